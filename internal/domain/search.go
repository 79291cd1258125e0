package domain

import (
	"fmt"
	"time"
)

// Limits applied during request validation.
const (
	MinQueryLength = 1
	MaxQueryLength = 500
)

// SearchRequest defines the parameters for a unified search. It is immutable
// for the duration of one search invocation.
type SearchRequest struct {
	// Query is the free-text search query (1..500 chars, required)
	Query string `json:"query"`

	// Types is the optional list of requested resource types. Empty or
	// omitted means the default set.
	Types []ResourceType `json:"types,omitempty"`

	// Destination is an optional destination string (required by the
	// activity, accommodation, and flight providers)
	Destination string `json:"destination,omitempty"`

	// StartDate and EndDate bound the optional travel date range
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	// Origin is the optional departure point (flights only)
	Origin string `json:"origin,omitempty"`

	// Travelers holds the traveler counts
	Travelers Travelers `json:"travelers"`

	// Filters contains optional cross-type filtering criteria
	Filters *Filters `json:"filters,omitempty"`

	// SortBy specifies the sort field (relevance, price, rating)
	SortBy SortOption `json:"sort_by,omitempty"`

	// SortOrder specifies ascending or descending order. Ignored for
	// relevance, which is always descending.
	SortOrder SortOrder `json:"sort_order,omitempty"`
}

// Travelers holds the traveler counts for a search.
type Travelers struct {
	// Adults is the number of adult travelers (minimum 1)
	Adults int `json:"adults"`

	// Children is the number of child travelers
	Children int `json:"children"`

	// Infants is the number of infant travelers
	Infants int `json:"infants"`
}

// Validate checks if the search request is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchRequest) Validate() error {
	if len(s.Query) < MinQueryLength {
		return fmt.Errorf("%w: query is required", ErrInvalidRequest)
	}
	if len(s.Query) > MaxQueryLength {
		return fmt.Errorf("%w: query must be at most %d characters, got %d", ErrInvalidRequest, MaxQueryLength, len(s.Query))
	}

	for _, t := range s.Types {
		if !t.IsValid() {
			return fmt.Errorf("%w: unknown resource type %q", ErrInvalidRequest, t)
		}
	}

	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidRequest)
	}

	if s.Travelers.Adults < 1 {
		return fmt.Errorf("%w: travelers.adults must be at least 1", ErrInvalidRequest)
	}
	if s.Travelers.Children < 0 {
		return fmt.Errorf("%w: travelers.children must not be negative", ErrInvalidRequest)
	}
	if s.Travelers.Infants < 0 {
		return fmt.Errorf("%w: travelers.infants must not be negative", ErrInvalidRequest)
	}

	if s.Filters != nil {
		if err := s.Filters.Validate(); err != nil {
			return err
		}
	}

	if s.SortBy != "" && !s.SortBy.IsValid() {
		return fmt.Errorf("%w: sort_by must be one of: relevance, price, rating; got %q", ErrInvalidRequest, s.SortBy)
	}
	if s.SortOrder != "" && !s.SortOrder.IsValid() {
		return fmt.Errorf("%w: sort_order must be asc or desc, got %q", ErrInvalidRequest, s.SortOrder)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchRequest) SetDefaults() {
	if s.Travelers.Adults == 0 {
		s.Travelers.Adults = 1
	}
	if s.SortBy == "" {
		s.SortBy = SortByRelevance
	}
	if s.SortOrder == "" {
		s.SortOrder = SortDesc
	}
}

// EffectiveTypes resolves the requested type list: deduplicated requested
// types intersected with the supported set, or the default set when the
// request supplied none. The result may be empty only if the caller passes
// an empty default set.
func (s *SearchRequest) EffectiveTypes(defaults []ResourceType) []ResourceType {
	if len(s.Types) == 0 {
		return defaults
	}

	seen := make(map[ResourceType]bool, len(s.Types))
	result := make([]ResourceType, 0, len(s.Types))
	for _, t := range s.Types {
		if !t.IsValid() || seen[t] {
			continue
		}
		seen[t] = true
		result = append(result, t)
	}
	return result
}
