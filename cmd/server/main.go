// Package main is the entry point for the unified travel search service.
//
//	@title						Unified Travel Search API
//	@version					1.0.0
//	@description				A unified travel search service that aggregates destinations, flights, accommodations, and activities, with a bring-your-own-key secret management API.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/tripsage/unified-travel-search/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/tripsage/unified-travel-search/docs"

	apphttp "github.com/tripsage/unified-travel-search/internal/adapter/http"
	"github.com/tripsage/unified-travel-search/internal/adapter/http/middleware"
	"github.com/tripsage/unified-travel-search/internal/adapter/provider/accommodation"
	"github.com/tripsage/unified-travel-search/internal/adapter/provider/activity"
	"github.com/tripsage/unified-travel-search/internal/adapter/provider/destination"
	"github.com/tripsage/unified-travel-search/internal/adapter/provider/flight"
	"github.com/tripsage/unified-travel-search/internal/config"
	"github.com/tripsage/unified-travel-search/internal/domain"
	"github.com/tripsage/unified-travel-search/internal/infrastructure/cache"
	"github.com/tripsage/unified-travel-search/internal/infrastructure/logger"
	"github.com/tripsage/unified-travel-search/internal/secrets"
	"github.com/tripsage/unified-travel-search/internal/secrets/envelope"
	"github.com/tripsage/unified-travel-search/internal/usecase"
)

const (
	shutdownTimeout  = 10 * time.Second
	redisPingTimeout = 5 * time.Second
	mockBasePath     = "docs/response-mock"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "unified-travel-search",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("redis", cfg.Redis.Enabled).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup storage (Redis when enabled, in-memory otherwise)
	appCache, secretStore, err := setupStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage")
	}

	// Setup routes
	if err := setupRoutes(e, cfg, appCache, secretStore, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize routes")
	}

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupStorage selects the cache and secret store backends. When Redis is
// enabled, both share a single client; otherwise everything is in-memory.
func setupStorage(cfg *config.Config) (cache.Cache, secrets.SecretStore, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), secrets.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	return cache.NewRedisCacheWithClient(client), secrets.NewRedisSecretStore(client), nil
}

// setupRoutes wires the provider registry, use cases, and HTTP handlers.
func setupRoutes(e *echo.Echo, cfg *config.Config, appCache cache.Cache, secretStore secrets.SecretStore, log *logger.Logger) error {
	// Register the fixed provider set. File backends serve mock responses;
	// swap in live backends per provider as they come online.
	registry := domain.NewProviderRegistry()
	registry.Register(destination.NewAdapter(destination.NewEchoBackend()))
	registry.Register(flight.NewAdapter(flight.NewFileBackend(mockBasePath + "/flight_offers_response.json")))
	registry.Register(accommodation.NewAdapter(accommodation.NewFileBackend(mockBasePath + "/properties_search_response.json")))
	registry.Register(activity.NewAdapter(activity.NewFileBackend(mockBasePath + "/places_search_response.json")))

	searchUseCase := usecase.NewUnifiedSearchUseCase(registry, appCache, &usecase.Config{
		CacheTTL:        cfg.Search.CacheTTL,
		ProviderTimeout: cfg.Search.ProviderTimeout,
	}, log.Logger)

	codec, err := envelope.NewCodecWithIterations(cfg.Crypto.MasterPassphrase, cfg.Crypto.KDFIterations)
	if err != nil {
		return fmt.Errorf("create envelope codec: %w", err)
	}

	keyService := secrets.NewService(
		secretStore,
		codec,
		secrets.NewHTTPValidator(cfg.Secrets.ValidatorURL),
		appCache,
		&secrets.ServiceConfig{MaxSecretsPerUser: cfg.Secrets.MaxPerUser},
		log.Logger,
	)

	apphttp.RegisterRoutes(e, apphttp.NewSearchHandler(searchUseCase), apphttp.NewKeysHandler(keyService))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
