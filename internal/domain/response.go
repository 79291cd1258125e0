package domain

// UnifiedSearchResponse represents the aggregated response from a unified
// search across all queried providers.
type UnifiedSearchResponse struct {
	// Results contains the merged result list after filtering and sorting
	Results []ResultItem `json:"results"`

	// Facets contains aggregations derived from the pre-filter result set
	Facets []SearchFacet `json:"facets,omitempty"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// ResultsByType groups results per resource type
	ResultsByType map[ResourceType][]ResultItem `json:"results_by_type,omitempty"`

	// Errors holds non-fatal per-provider errors keyed by provider type.
	// Nil when every queried provider succeeded.
	Errors map[string]string `json:"errors,omitempty"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of merged results before filtering
	TotalResults int `json:"total_results"`

	// ReturnedResults is the number of results after filtering and sorting
	ReturnedResults int `json:"returned_results"`

	// SearchTimeMs is the wall-clock search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`

	// SearchID is a fresh UUID generated per non-cached response
	SearchID string `json:"search_id"`

	// ProvidersQueried lists the resource types actually invoked,
	// excluding silently skipped providers
	ProvidersQueried []string `json:"providers_queried"`

	// ProviderErrors maps a failed provider's type to its error message.
	// Nil (omitted) when no provider failed.
	ProviderErrors map[string]string `json:"provider_errors,omitempty"`

	// Personalized indicates whether results were personalized for the caller
	Personalized bool `json:"personalized,omitempty"`
}

// FacetKind identifies the aggregation shape of a facet.
type FacetKind string

// Supported facet kinds.
const (
	FacetTerms   FacetKind = "terms"
	FacetRange   FacetKind = "range"
	FacetBoolean FacetKind = "boolean"
)

// SearchFacet is a read-only aggregation over the merged result set.
// Facets are recomputed per response and never persisted.
type SearchFacet struct {
	// Field is the result field the facet aggregates
	Field string `json:"field"`

	// Label is the human-readable display label
	Label string `json:"label"`

	// Kind is the aggregation shape (terms, range, boolean)
	Kind FacetKind `json:"kind"`

	// Buckets holds the facet's value buckets
	Buckets []FacetBucket `json:"buckets"`
}

// FacetBucket is one bucket within a facet. Terms buckets use Value/Label,
// range buckets use Min/Max; both carry Count.
type FacetBucket struct {
	Value string   `json:"value,omitempty"`
	Label string   `json:"label,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Count int      `json:"count"`
}

// GroupByType builds the per-type view of a result list.
// Returns nil for an empty list so the field marshals as absent.
func GroupByType(items []ResultItem) map[ResourceType][]ResultItem {
	if len(items) == 0 {
		return nil
	}
	grouped := make(map[ResourceType][]ResultItem)
	for _, item := range items {
		grouped[item.Type] = append(grouped[item.Type], item)
	}
	return grouped
}
