// Package domain contains the core business entities and rules for the unified
// travel search system. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

// ResourceType identifies the kind of travel resource a search result refers to.
type ResourceType string

// Supported resource types.
const (
	TypeDestination   ResourceType = "destination"
	TypeFlight        ResourceType = "flight"
	TypeAccommodation ResourceType = "accommodation"
	TypeActivity      ResourceType = "activity"
)

// IsValid checks if the resource type is one of the supported values.
func (t ResourceType) IsValid() bool {
	switch t {
	case TypeDestination, TypeFlight, TypeAccommodation, TypeActivity:
		return true
	default:
		return false
	}
}

// DefaultResourceTypes is the set of types searched when a request does not
// name any. Order is significant only for cache-key canonicalization, which
// sorts the list itself.
func DefaultResourceTypes() []ResourceType {
	return []ResourceType{TypeDestination, TypeFlight, TypeAccommodation, TypeActivity}
}

// ResultItem is the canonical cross-type search result representation.
// Every provider adapter maps its backend's native response into this shape.
type ResultItem struct {
	// ID is an opaque identifier, unique within one response
	ID string `json:"id"`

	// Type tags which resource family this result belongs to
	Type ResourceType `json:"type"`

	// Title is the primary display string
	Title string `json:"title"`

	// Description is a short human-readable summary
	Description string `json:"description"`

	// ImageURL is an optional image link
	ImageURL string `json:"image_url,omitempty"`

	// Price is the optional price amount; nil means "unpriced".
	// Unpriced items pass through price filters rather than being excluded.
	Price *float64 `json:"price,omitempty"`

	// Currency is the ISO 4217 code for Price (e.g., "USD")
	Currency string `json:"currency,omitempty"`

	// Location is an optional free-form location string
	Location string `json:"location,omitempty"`

	// Rating is the optional rating in the 0..5 domain; nil means "unrated".
	// Unrated items pass through rating filters rather than being excluded.
	Rating *float64 `json:"rating,omitempty"`

	// ReviewCount is the number of reviews backing Rating
	ReviewCount int `json:"review_count,omitempty"`

	// RelevanceScore in 0..1 drives the default ordering
	RelevanceScore float64 `json:"relevance_score"`

	// MatchReasons explains why this item matched the query
	MatchReasons []string `json:"match_reasons,omitempty"`

	// QuickActions are suggested follow-up actions for the UI
	QuickActions []QuickAction `json:"quick_actions,omitempty"`

	// Metadata carries type-specific extra fields (duration, provider
	// name, coordinates, etc.)
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// QuickAction is a suggested follow-up action attached to a result.
type QuickAction struct {
	// Action is the machine-readable action identifier
	Action string `json:"action"`

	// Label is the human-readable button text
	Label string `json:"label"`
}

// HasPrice reports whether the item carries a price.
func (r *ResultItem) HasPrice() bool {
	return r.Price != nil
}

// HasRating reports whether the item carries a rating.
func (r *ResultItem) HasRating() bool {
	return r.Rating != nil
}
