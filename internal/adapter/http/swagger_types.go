// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerSearchResponse represents the unified search API response for swagger documentation.
// @Description Aggregated search results with metadata
type SwaggerSearchResponse struct {
	// Results contains the merged result list after filtering and sorting
	Results []SwaggerResultItem `json:"results"`

	// Metadata contains information about the search execution
	Metadata SwaggerSearchMetadata `json:"metadata"`

	// Errors holds non-fatal per-provider errors keyed by provider type
	Errors map[string]string `json:"errors,omitempty"`
}

// SwaggerSearchMetadata contains metadata about the search execution.
// @Description Metadata about the search execution
type SwaggerSearchMetadata struct {
	// TotalResults is the number of merged results before filtering
	TotalResults int `json:"total_results" example:"42"`

	// ReturnedResults is the number of results after filtering and sorting
	ReturnedResults int `json:"returned_results" example:"25"`

	// SearchTimeMs is the wall-clock search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms" example:"350"`

	// SearchID identifies this search execution
	SearchID string `json:"search_id" example:"3f1d9a2e-8c47-4b6f-9d1e-5a2b7c8d9e0f"`

	// ProvidersQueried lists the resource types actually invoked
	ProvidersQueried []string `json:"providers_queried" example:"destination,flight,accommodation,activity"`

	// ProviderErrors maps a failed provider's type to its error message
	ProviderErrors map[string]string `json:"provider_errors,omitempty"`
}

// SwaggerResultItem represents a single cross-type search result.
// @Description One search result from any provider
type SwaggerResultItem struct {
	// ID is an opaque identifier, unique within one response
	ID string `json:"id" example:"accommodation-htl-001"`

	// Type tags which resource family this result belongs to
	Type string `json:"type" example:"accommodation"`

	// Title is the primary display string
	Title string `json:"title" example:"Grand Plaza Hotel"`

	// Description is a short human-readable summary
	Description string `json:"description" example:"4-star hotel in Midtown"`

	// ImageURL is an optional image link
	ImageURL string `json:"image_url,omitempty" example:"https://example.com/hotel.jpg"`

	// Price is the optional price amount
	Price *float64 `json:"price,omitempty" example:"189.50"`

	// Currency is the ISO 4217 code for Price
	Currency string `json:"currency,omitempty" example:"USD"`

	// Location is an optional free-form location string
	Location string `json:"location,omitempty" example:"New York, NY"`

	// Rating is the optional rating in the 0..5 domain
	Rating *float64 `json:"rating,omitempty" example:"4.5"`

	// ReviewCount is the number of reviews backing Rating
	ReviewCount int `json:"review_count,omitempty" example:"1240"`

	// RelevanceScore in 0..1 drives the default ordering
	RelevanceScore float64 `json:"relevance_score" example:"0.92"`

	// QuickActions are suggested follow-up actions for the UI
	QuickActions []SwaggerQuickAction `json:"quick_actions,omitempty"`

	// Metadata carries type-specific extra fields
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// SwaggerQuickAction is a suggested follow-up action attached to a result.
// @Description Suggested follow-up action
type SwaggerQuickAction struct {
	// Action is the machine-readable action identifier
	Action string `json:"action" example:"book_room"`

	// Label is the human-readable button text
	Label string `json:"label" example:"Book Room"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Success is always false for error responses
	Success bool `json:"success" example:"false"`

	// Error contains error details
	Error SwaggerErrorDetail `json:"error"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
