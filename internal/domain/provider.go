package domain

import (
	"context"
	"time"
)

// ProviderParams is the normalized parameter set passed to a provider
// adapter. It is derived from the SearchRequest by the orchestrator; each
// adapter reads only the fields relevant to its resource type.
type ProviderParams struct {
	// Query is the free-text query
	Query string

	// Destination is the destination string (required by the activity,
	// accommodation, and flight providers)
	Destination string

	// Origin is the departure point (flights only)
	Origin string

	// StartDate and EndDate bound the travel date range
	StartDate *time.Time
	EndDate   *time.Time

	// Travelers holds the traveler counts
	Travelers Travelers

	// RatingFloor is the minimum rating requested via filters, if any
	RatingFloor *float64

	// Filters carries the full filter set for providers that can push
	// constraints down to their backend
	Filters *Filters
}

// SearchProvider is the contract every resource-type search backend adapter
// implements.
//
// Implementations must return an empty slice (not an error) for "no
// results", and must propagate backend failures as a single error so the
// orchestrator can record them per provider.
type SearchProvider interface {
	// Type returns the resource type this provider serves.
	Type() ResourceType

	// Search queries the backend and maps its native response into zero or
	// more ResultItems.
	Search(ctx context.Context, params ProviderParams) ([]ResultItem, error)
}

// ProviderRegistry holds the fixed set of search providers keyed by
// resource type. The provider set is known at build time; the registry
// exists for wiring and lookup, not runtime plugins.
type ProviderRegistry struct {
	providers map[ResourceType]SearchProvider
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[ResourceType]SearchProvider),
	}
}

// Register adds a provider to the registry, replacing any previous provider
// for the same type. Nil providers are ignored.
func (r *ProviderRegistry) Register(p SearchProvider) {
	if p == nil {
		return
	}
	r.providers[p.Type()] = p
}

// Get returns the provider for the given type, or nil if none registered.
func (r *ProviderRegistry) Get(t ResourceType) SearchProvider {
	return r.providers[t]
}

// Has reports whether a provider is registered for the given type.
func (r *ProviderRegistry) Has(t ResourceType) bool {
	_, ok := r.providers[t]
	return ok
}

// Types returns the registered resource types.
func (r *ProviderRegistry) Types() []ResourceType {
	types := make([]ResourceType, 0, len(r.providers))
	for t := range r.providers {
		types = append(types, t)
	}
	return types
}

// Len returns the number of registered providers.
func (r *ProviderRegistry) Len() int {
	return len(r.providers)
}
