package domain

import "fmt"

// SortOption defines the available sort fields for search results.
type SortOption string

// Available sort fields.
const (
	// SortByRelevance sorts by relevance score, always descending (default)
	SortByRelevance SortOption = "relevance"

	// SortByPrice sorts by price; unpriced items always sort last
	SortByPrice SortOption = "price"

	// SortByRating sorts by rating; unrated items always sort last
	SortByRating SortOption = "rating"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByRelevance, SortByPrice, SortByRating:
		return true
	default:
		return false
	}
}

// SortOrder defines the sort direction.
type SortOrder string

// Available sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid checks if the sort order is a valid value.
func (s SortOrder) IsValid() bool {
	return s == SortAsc || s == SortDesc
}

// Filters defines optional cross-type filters applied to merged results.
// All fields are independently optional; nil means "no constraint".
type Filters struct {
	// PriceMin excludes priced items below this amount
	PriceMin *float64 `json:"price_min,omitempty"`

	// PriceMax excludes priced items above this amount
	PriceMax *float64 `json:"price_max,omitempty"`

	// RatingMin excludes rated items below this rating (0..5)
	RatingMin *float64 `json:"rating_min,omitempty"`

	// Geo restricts results to a radius around a center point
	Geo *GeoFilter `json:"geo,omitempty"`

	// Custom carries free-form provider-specific filter values
	Custom map[string]interface{} `json:"custom,omitempty"`
}

// GeoFilter restricts results to a circle around a center coordinate.
type GeoFilter struct {
	// Lat is the center latitude in -90..90
	Lat float64 `json:"lat"`

	// Lng is the center longitude in -180..180
	Lng float64 `json:"lng"`

	// RadiusKm is the search radius in kilometers, 0..100
	RadiusKm float64 `json:"radius_km"`
}

// Validate checks filter bounds.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (f *Filters) Validate() error {
	if f.PriceMin != nil && *f.PriceMin < 0 {
		return fmt.Errorf("%w: price_min must not be negative", ErrInvalidRequest)
	}
	if f.PriceMax != nil && *f.PriceMax < 0 {
		return fmt.Errorf("%w: price_max must not be negative", ErrInvalidRequest)
	}
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		return fmt.Errorf("%w: price_min must not exceed price_max", ErrInvalidRequest)
	}
	if f.RatingMin != nil && (*f.RatingMin < 0 || *f.RatingMin > 5) {
		return fmt.Errorf("%w: rating_min must be between 0 and 5", ErrInvalidRequest)
	}
	if f.Geo != nil {
		if f.Geo.Lat < -90 || f.Geo.Lat > 90 {
			return fmt.Errorf("%w: geo.lat must be between -90 and 90", ErrInvalidRequest)
		}
		if f.Geo.Lng < -180 || f.Geo.Lng > 180 {
			return fmt.Errorf("%w: geo.lng must be between -180 and 180", ErrInvalidRequest)
		}
		if f.Geo.RadiusKm < 0 || f.Geo.RadiusKm > 100 {
			return fmt.Errorf("%w: geo.radius_km must be between 0 and 100", ErrInvalidRequest)
		}
	}
	return nil
}

// MatchesItem checks if a result item passes all filter criteria.
// Items missing a filtered field are NOT excluded: an unpriced item passes
// every price filter and an unrated item passes every rating filter. This
// lenient policy is deliberate.
//
// Only price and rating bounds exclude items. Geo and Custom are validated
// and carried through to the cache key but are not applied here; they are
// forwarded for providers to interpret.
func (f *Filters) MatchesItem(item ResultItem) bool {
	if f == nil {
		return true
	}

	if item.Price != nil {
		if f.PriceMin != nil && *item.Price < *f.PriceMin {
			return false
		}
		if f.PriceMax != nil && *item.Price > *f.PriceMax {
			return false
		}
	}

	if item.Rating != nil {
		if f.RatingMin != nil && *item.Rating < *f.RatingMin {
			return false
		}
	}

	return true
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByRelevance if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByRelevance
}
