// Package http provides the HTTP handler layer for the unified travel
// search API.
package http

import (
	"strings"
	"time"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// ToDomainSearchRequest converts a validated UnifiedSearchRequest to a
// domain.SearchRequest. Validation is assumed to have run; malformed
// optional fields are dropped rather than rejected here.
func ToDomainSearchRequest(req *UnifiedSearchRequest) domain.SearchRequest {
	out := domain.SearchRequest{
		Query:       strings.TrimSpace(req.Query),
		Types:       toDomainTypes(req.Types),
		Destination: strings.TrimSpace(req.Destination),
		Origin:      strings.TrimSpace(req.Origin),
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
		Filters:     toDomainFilters(req.Filters),
		SortBy:      domain.SortOption(strings.ToLower(req.SortBy)),
		SortOrder:   domain.SortOrder(strings.ToLower(req.SortOrder)),
	}

	if req.Travelers != nil {
		out.Travelers = domain.Travelers{
			Adults:   req.Travelers.Adults,
			Children: req.Travelers.Children,
			Infants:  req.Travelers.Infants,
		}
	}

	return out
}

// toDomainTypes converts the type strings, dropping anything unknown.
func toDomainTypes(types []string) []domain.ResourceType {
	if len(types) == 0 {
		return nil
	}

	result := make([]domain.ResourceType, 0, len(types))
	for _, raw := range types {
		t := domain.ResourceType(strings.ToLower(strings.TrimSpace(raw)))
		if t.IsValid() {
			result = append(result, t)
		}
	}
	return result
}

// toDomainFilters converts a FiltersDTO to domain.Filters.
func toDomainFilters(dto *FiltersDTO) *domain.Filters {
	if dto == nil {
		return nil
	}

	filters := &domain.Filters{
		PriceMin:  dto.PriceMin,
		PriceMax:  dto.PriceMax,
		RatingMin: dto.RatingMin,
	}

	if dto.Geo != nil {
		filters.Geo = &domain.GeoFilter{
			Lat:      dto.Geo.Lat,
			Lng:      dto.Geo.Lng,
			RadiusKm: dto.Geo.RadiusKm,
		}
	}

	return filters
}

// parseDate parses a YYYY-MM-DD date string, returning nil when absent
// or malformed.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}
