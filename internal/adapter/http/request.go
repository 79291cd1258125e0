// Package http provides the HTTP handler layer for the unified travel
// search API. It handles request parsing, validation, and response
// formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// UnifiedSearchRequest represents the request body for unified search.
type UnifiedSearchRequest struct {
	// Query is the free-text search query (1-500 characters)
	Query string `json:"query"`

	// Types optionally restricts the search to these resource types:
	// destination, flight, accommodation, activity
	Types []string `json:"types,omitempty"`

	// Destination is an optional destination string (e.g., "New York, NY")
	Destination string `json:"destination,omitempty"`

	// Origin is the optional departure point, used by flight search
	Origin string `json:"origin,omitempty"`

	// StartDate and EndDate bound the travel dates in YYYY-MM-DD format
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	// Travelers holds the traveler counts (defaults to one adult)
	Travelers *TravelersDTO `json:"travelers,omitempty"`

	// Filters contains optional cross-type filtering criteria
	Filters *FiltersDTO `json:"filters,omitempty"`

	// SortBy specifies the sort field: relevance, price, rating
	SortBy string `json:"sort_by,omitempty"`

	// SortOrder specifies asc or desc. Ignored for relevance.
	SortOrder string `json:"sort_order,omitempty"`
}

// TravelersDTO represents traveler counts.
type TravelersDTO struct {
	Adults   int `json:"adults" example:"2"`
	Children int `json:"children,omitempty" example:"1"`
	Infants  int `json:"infants,omitempty" example:"0"`
}

// FiltersDTO represents optional filters for unified search.
// Example: {"price_min": 10, "price_max": 200, "rating_min": 4.0}
type FiltersDTO struct {
	// PriceMin filters out items priced below this amount
	PriceMin *float64 `json:"price_min,omitempty" example:"10"`

	// PriceMax filters out items priced above this amount
	PriceMax *float64 `json:"price_max,omitempty" example:"200"`

	// RatingMin filters out items rated below this value (0-5)
	RatingMin *float64 `json:"rating_min,omitempty" example:"4.0"`

	// Geo restricts results to a radius around a point
	Geo *GeoFilterDTO `json:"geo,omitempty"`
}

// GeoFilterDTO represents a geographic radius filter.
type GeoFilterDTO struct {
	Lat      float64 `json:"lat" example:"40.7128"`
	Lng      float64 `json:"lng" example:"-74.0060"`
	RadiusKm float64 `json:"radius_km" example:"25"`
}

// datePattern matches YYYY-MM-DD date strings.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Valid sort fields.
var validSortOptions = map[string]bool{
	"relevance": true,
	"price":     true,
	"rating":    true,
	"":          true, // Empty is valid (defaults to relevance)
}

// Valid sort orders.
var validSortOrders = map[string]bool{
	"asc":  true,
	"desc": true,
	"":     true, // Empty is valid (defaults to desc)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
func (r *UnifiedSearchRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateQuery(errs)
	r.validateTypes(errs)
	r.validateDates(errs)
	r.validateTravelers(errs)
	r.validateSort(errs)
	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *UnifiedSearchRequest) validateQuery(errs *ValidationErrors) {
	query := strings.TrimSpace(r.Query)
	if query == "" {
		errs.Add("query", "query is required")
		return
	}
	if len(r.Query) > domain.MaxQueryLength {
		errs.Add("query", fmt.Sprintf("query must be at most %d characters", domain.MaxQueryLength))
	}
}

func (r *UnifiedSearchRequest) validateTypes(errs *ValidationErrors) {
	for i, raw := range r.Types {
		t := domain.ResourceType(strings.ToLower(strings.TrimSpace(raw)))
		if !t.IsValid() {
			errs.Add(fmt.Sprintf("types[%d]", i),
				"type must be one of: destination, flight, accommodation, activity")
			continue
		}
		r.Types[i] = string(t) // Normalize to lowercase
	}
}

func (r *UnifiedSearchRequest) validateDates(errs *ValidationErrors) {
	start := r.parseDateField(errs, "start_date", r.StartDate)
	end := r.parseDateField(errs, "end_date", r.EndDate)

	if start != nil && end != nil && end.Before(*start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}
}

func (r *UnifiedSearchRequest) parseDateField(errs *ValidationErrors, field, value string) *time.Time {
	if value == "" {
		return nil
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return nil
	}
	return &parsed
}

func (r *UnifiedSearchRequest) validateTravelers(errs *ValidationErrors) {
	if r.Travelers == nil {
		return
	}
	if r.Travelers.Adults < 0 {
		errs.Add("travelers.adults", "adults must not be negative")
	}
	if r.Travelers.Children < 0 {
		errs.Add("travelers.children", "children must not be negative")
	}
	if r.Travelers.Infants < 0 {
		errs.Add("travelers.infants", "infants must not be negative")
	}
}

func (r *UnifiedSearchRequest) validateSort(errs *ValidationErrors) {
	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sort_by", "sort_by must be one of: relevance, price, rating")
	}
	if !validSortOrders[strings.ToLower(r.SortOrder)] {
		errs.Add("sort_order", "sort_order must be asc or desc")
	}
}

func (r *UnifiedSearchRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.PriceMin != nil && *r.Filters.PriceMin < 0 {
		errs.Add("filters.price_min", "price_min must not be negative")
	}
	if r.Filters.PriceMax != nil && *r.Filters.PriceMax < 0 {
		errs.Add("filters.price_max", "price_max must not be negative")
	}
	if r.Filters.PriceMin != nil && r.Filters.PriceMax != nil &&
		*r.Filters.PriceMin > *r.Filters.PriceMax {
		errs.Add("filters.price_min", "price_min must not exceed price_max")
	}

	if r.Filters.RatingMin != nil && (*r.Filters.RatingMin < 0 || *r.Filters.RatingMin > 5) {
		errs.Add("filters.rating_min", "rating_min must be between 0 and 5")
	}

	if r.Filters.Geo != nil {
		r.validateGeoFilter(errs)
	}
}

func (r *UnifiedSearchRequest) validateGeoFilter(errs *ValidationErrors) {
	geo := r.Filters.Geo

	if geo.Lat < -90 || geo.Lat > 90 {
		errs.Add("filters.geo.lat", "lat must be between -90 and 90")
	}
	if geo.Lng < -180 || geo.Lng > 180 {
		errs.Add("filters.geo.lng", "lng must be between -180 and 180")
	}
	if geo.RadiusKm <= 0 || geo.RadiusKm > 100 {
		errs.Add("filters.geo.radius_km", "radius_km must be between 0 and 100")
	}
}
