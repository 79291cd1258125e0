// Package usecase contains the business logic for unified travel search.
// It orchestrates provider calls using the Scatter-Gather concurrency
// pattern and coordinates with the response cache.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tripsage/unified-travel-search/internal/domain"
	"github.com/tripsage/unified-travel-search/internal/infrastructure/cache"
)

// DefaultCacheTTL bounds how long a composite response stays cached.
const DefaultCacheTTL = 300 * time.Second

// UnifiedSearchUseCase defines the interface for unified search operations.
type UnifiedSearchUseCase interface {
	// Search fans one request out to all applicable resource-type
	// providers and returns the aggregated, filtered, sorted response.
	// Partial provider failure is tolerated and recorded per provider.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.UnifiedSearchResponse, error)

	// Suggest returns autocomplete suggestions for a partial query.
	Suggest(partial string, limit int) ([]string, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// CacheTTL is the composite-response cache TTL
	CacheTTL time.Duration

	// DefaultTypes is the type set used when a request names none
	DefaultTypes []domain.ResourceType

	// ProviderTimeout optionally bounds each provider call.
	// Zero disables the per-provider timeout (the reference behavior).
	ProviderTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CacheTTL:     DefaultCacheTTL,
		DefaultTypes: domain.DefaultResourceTypes(),
	}
}

// unifiedSearchUseCase implements UnifiedSearchUseCase.
type unifiedSearchUseCase struct {
	registry *domain.ProviderRegistry
	cache    cache.Cache
	cfg      Config
	log      zerolog.Logger
}

// NewUnifiedSearchUseCase creates a new UnifiedSearchUseCase. If config is
// nil, defaults are used.
func NewUnifiedSearchUseCase(registry *domain.ProviderRegistry, responseCache cache.Cache, config *Config, log zerolog.Logger) UnifiedSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.CacheTTL > 0 {
			cfg.CacheTTL = config.CacheTTL
		}
		if config.DefaultTypes != nil {
			cfg.DefaultTypes = config.DefaultTypes
		}
		cfg.ProviderTimeout = config.ProviderTimeout
	}

	return &unifiedSearchUseCase{
		registry: registry,
		cache:    responseCache,
		cfg:      cfg,
		log:      log,
	}
}

// providerResult holds the result from a single provider query.
type providerResult struct {
	Type     domain.ResourceType
	Items    []domain.ResultItem
	Err      error
	Duration time.Duration
}

// Search implements UnifiedSearchUseCase.Search.
func (uc *unifiedSearchUseCase) Search(ctx context.Context, req domain.SearchRequest) (*domain.UnifiedSearchResponse, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if uc.registry == nil || uc.cache == nil {
		return nil, domain.WrapOrchestration(fmt.Errorf("search dependencies not initialized"))
	}

	key, err := cache.Key(req, uc.cfg.DefaultTypes)
	if err != nil {
		return nil, domain.WrapOrchestration(err)
	}

	// Cache hit: providers are not invoked at all.
	if data, found := uc.cache.Get(ctx, key); found {
		var cached domain.UnifiedSearchResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			uc.log.Debug().Str("cache_key", key).Msg("Unified search cache hit")
			return &cached, nil
		}
		// Corrupt entry: fall through to a fresh search.
		uc.log.Warn().Str("cache_key", key).Msg("Discarding undecodable cache entry")
	}

	startTime := time.Now()

	// Effective type set: requested ∩ registered, or the default set.
	effective := uc.effectiveTypes(req)
	if len(effective) == 0 {
		return uc.emptyResponse(startTime), nil
	}

	merged, queried, providerErrors := uc.fanOut(ctx, req, effective)

	// Facets derive from the pre-filter merged set.
	facets := deriveFacets(merged)

	filtered := applyFilters(merged, req.Filters)
	sorted := sortItems(filtered, req.SortBy, req.SortOrder)

	response := &domain.UnifiedSearchResponse{
		Results:       sorted,
		Facets:        facets,
		ResultsByType: domain.GroupByType(sorted),
		Errors:        providerErrors,
		Metadata: domain.SearchMetadata{
			TotalResults:     len(merged),
			ReturnedResults:  len(sorted),
			SearchTimeMs:     time.Since(startTime).Milliseconds(),
			SearchID:         uuid.New().String(),
			ProvidersQueried: queried,
			ProviderErrors:   providerErrors,
		},
	}

	uc.store(ctx, key, response)

	return response, nil
}

// effectiveTypes resolves the request's type list against the registry.
func (uc *unifiedSearchUseCase) effectiveTypes(req domain.SearchRequest) []domain.ResourceType {
	resolved := req.EffectiveTypes(uc.cfg.DefaultTypes)
	effective := make([]domain.ResourceType, 0, len(resolved))
	for _, t := range resolved {
		if uc.registry.Has(t) {
			effective = append(effective, t)
		}
	}
	return effective
}

// fanOut launches all applicable provider calls concurrently and waits for
// every one of them (join-all; no short circuit on first failure). Providers
// whose required parameters are absent are skipped silently: they appear in
// neither the queried list nor the error map.
func (uc *unifiedSearchUseCase) fanOut(ctx context.Context, req domain.SearchRequest, types []domain.ResourceType) (merged []domain.ResultItem, queried []string, providerErrors map[string]string) {
	params := toProviderParams(req)

	invoked := make([]domain.ResourceType, 0, len(types))
	for _, t := range types {
		if hasRequiredParams(t, req) {
			invoked = append(invoked, t)
		}
	}

	resultsChan := make(chan providerResult, len(invoked))
	for _, t := range invoked {
		go uc.queryProvider(ctx, uc.registry.Get(t), params, resultsChan)
	}

	merged = make([]domain.ResultItem, 0)
	queried = make([]string, 0, len(invoked))
	for range invoked {
		result := <-resultsChan

		queried = append(queried, string(result.Type))
		if result.Err != nil {
			if providerErrors == nil {
				providerErrors = make(map[string]string)
			}
			providerErrors[string(result.Type)] = result.Err.Error()
			uc.log.Warn().
				Str("provider", string(result.Type)).
				Dur("duration", result.Duration).
				Err(result.Err).
				Msg("Search provider failed")
			continue
		}

		for _, item := range result.Items {
			if item.Type == "" {
				item.Type = result.Type
			}
			merged = append(merged, item)
		}
	}

	return merged, queried, providerErrors
}

// queryProvider queries a single provider with panic recovery so one
// provider cannot crash the whole search.
func (uc *unifiedSearchUseCase) queryProvider(ctx context.Context, provider domain.SearchProvider, params domain.ProviderParams, results chan<- providerResult) {
	if uc.cfg.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.ProviderTimeout)
		defer cancel()
	}

	start := time.Now()
	providerType := provider.Type()

	defer func() {
		if r := recover(); r != nil {
			results <- providerResult{
				Type:     providerType,
				Err:      fmt.Errorf("provider panic: %v", r),
				Duration: time.Since(start),
			}
		}
	}()

	items, err := provider.Search(ctx, params)
	if err != nil {
		err = domain.NewProviderError(string(providerType), err)
	}

	results <- providerResult{
		Type:     providerType,
		Items:    items,
		Err:      err,
		Duration: time.Since(start),
	}
}

// hasRequiredParams checks the type-specific required-parameter policy.
// Activity and accommodation searches need a destination; flight searches
// need both origin and destination. A provider missing its requirements is
// skipped silently rather than reported as an error.
func hasRequiredParams(t domain.ResourceType, req domain.SearchRequest) bool {
	switch t {
	case domain.TypeActivity, domain.TypeAccommodation:
		return req.Destination != ""
	case domain.TypeFlight:
		return req.Origin != "" && req.Destination != ""
	default:
		return true
	}
}

// toProviderParams derives the normalized provider parameter set from the
// request.
func toProviderParams(req domain.SearchRequest) domain.ProviderParams {
	params := domain.ProviderParams{
		Query:       req.Query,
		Destination: req.Destination,
		Origin:      req.Origin,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Travelers:   req.Travelers,
		Filters:     req.Filters,
	}
	if req.Filters != nil {
		params.RatingFloor = req.Filters.RatingMin
	}
	return params
}

// emptyResponse builds the zero-provider short-circuit response.
func (uc *unifiedSearchUseCase) emptyResponse(startTime time.Time) *domain.UnifiedSearchResponse {
	return &domain.UnifiedSearchResponse{
		Results: []domain.ResultItem{},
		Metadata: domain.SearchMetadata{
			SearchTimeMs:     time.Since(startTime).Milliseconds(),
			SearchID:         uuid.New().String(),
			ProvidersQueried: []string{},
		},
	}
}

// store serializes the response into the cache. Cache write failures are
// logged, never surfaced: the caller already has the response.
func (uc *unifiedSearchUseCase) store(ctx context.Context, key string, response *domain.UnifiedSearchResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		uc.log.Error().Err(err).Msg("Failed to serialize search response for caching")
		return
	}
	if err := uc.cache.Set(ctx, key, data, uc.cfg.CacheTTL); err != nil {
		uc.log.Error().Err(err).Str("cache_key", key).Msg("Failed to cache search response")
	}
}

// Ensure unifiedSearchUseCase implements UnifiedSearchUseCase at compile time.
var _ UnifiedSearchUseCase = (*unifiedSearchUseCase)(nil)
