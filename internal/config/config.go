// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// MinKDFIterations is the lowest acceptable key-derivation work factor
// for the secret envelope codec.
const MinKDFIterations = 300000

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Search  SearchConfig
	Crypto  CryptoConfig
	Secrets SecretsConfig
	Redis   RedisConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// SearchConfig holds settings for the unified search pipeline.
type SearchConfig struct {
	// CacheTTL bounds how long a composite response stays cached.
	CacheTTL time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"300s"`

	// ProviderTimeout optionally bounds each provider call; zero disables it.
	ProviderTimeout time.Duration `env:"SEARCH_PROVIDER_TIMEOUT" envDefault:"0"`
}

// CryptoConfig holds settings for the secret envelope codec.
type CryptoConfig struct {
	// MasterPassphrase derives the master key. Required in production;
	// the default exists for local development only.
	MasterPassphrase string `env:"CRYPTO_MASTER_PASSPHRASE" envDefault:"dev-only-passphrase"`

	// KDFIterations is the key-derivation work factor.
	KDFIterations int `env:"CRYPTO_KDF_ITERATIONS" envDefault:"310000"`
}

// SecretsConfig holds settings for the secret lifecycle service.
type SecretsConfig struct {
	MaxPerUser   int    `env:"SECRETS_MAX_PER_USER" envDefault:"50"`
	ValidatorURL string `env:"KEY_VALIDATOR_URL" envDefault:"http://localhost:9090"`
}

// RedisConfig holds Redis connection settings. When disabled, the service
// runs on in-memory stores.
type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED" envDefault:"false"`
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Search.CacheTTL <= 0 {
		return fmt.Errorf("SEARCH_CACHE_TTL must be positive")
	}
	if cfg.Search.ProviderTimeout < 0 {
		return fmt.Errorf("SEARCH_PROVIDER_TIMEOUT must not be negative")
	}

	// Validate crypto settings
	if cfg.Crypto.MasterPassphrase == "" {
		return fmt.Errorf("CRYPTO_MASTER_PASSPHRASE must not be empty")
	}
	if cfg.App.Env == "production" && cfg.Crypto.MasterPassphrase == "dev-only-passphrase" {
		return fmt.Errorf("CRYPTO_MASTER_PASSPHRASE must be set explicitly in production")
	}
	if cfg.Crypto.KDFIterations < MinKDFIterations {
		return fmt.Errorf("CRYPTO_KDF_ITERATIONS must be at least %d, got %d", MinKDFIterations, cfg.Crypto.KDFIterations)
	}

	// Validate secrets settings
	if cfg.Secrets.MaxPerUser < 1 {
		return fmt.Errorf("SECRETS_MAX_PER_USER must be at least 1")
	}
	if cfg.Secrets.ValidatorURL == "" {
		return fmt.Errorf("KEY_VALIDATOR_URL must not be empty")
	}

	// Validate redis settings
	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR must not be empty when REDIS_ENABLED is true")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
