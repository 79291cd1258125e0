package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/goccy/go-json"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// KeyPrefix namespaces all unified-search cache keys.
const KeyPrefix = "search:"

// keyFields is the canonical, semantically relevant subset of a search
// request. Field order is fixed by the struct; the type list is sorted and
// default-substituted so that an omitted list and an explicit default list
// hash identically.
type keyFields struct {
	Query       string      `json:"query"`
	Types       []string    `json:"types"`
	Destination string      `json:"destination"`
	StartDate   *string     `json:"start_date"`
	EndDate     *string     `json:"end_date"`
	Origin      string      `json:"origin"`
	Adults      int         `json:"adults"`
	Children    int         `json:"children"`
	Infants     int         `json:"infants"`
	SortBy      string      `json:"sort_by"`
	SortOrder   string      `json:"sort_order"`
	Filters     *keyFilters `json:"filters"`
}

// keyFilters mirrors every Filters sub-field.
type keyFilters struct {
	PriceMin  *float64               `json:"price_min"`
	PriceMax  *float64               `json:"price_max"`
	RatingMin *float64               `json:"rating_min"`
	GeoLat    *float64               `json:"geo_lat"`
	GeoLng    *float64               `json:"geo_lng"`
	GeoRadius *float64               `json:"geo_radius_km"`
	Custom    map[string]interface{} `json:"custom"`
}

// Key computes the canonical cache key for a search request. The defaults
// slice is the type set substituted when the request names none.
func Key(req domain.SearchRequest, defaults []domain.ResourceType) (string, error) {
	effective := req.EffectiveTypes(defaults)
	types := make([]string, len(effective))
	for i, t := range effective {
		types[i] = string(t)
	}
	sort.Strings(types)

	fields := keyFields{
		Query:       req.Query,
		Types:       types,
		Destination: req.Destination,
		StartDate:   isoDate(req.StartDate),
		EndDate:     isoDate(req.EndDate),
		Origin:      req.Origin,
		Adults:      req.Travelers.Adults,
		Children:    req.Travelers.Children,
		Infants:     req.Travelers.Infants,
		SortBy:      string(req.SortBy),
		SortOrder:   string(req.SortOrder),
	}

	if req.Filters != nil {
		f := keyFilters{
			PriceMin:  req.Filters.PriceMin,
			PriceMax:  req.Filters.PriceMax,
			RatingMin: req.Filters.RatingMin,
			Custom:    req.Filters.Custom,
		}
		if req.Filters.Geo != nil {
			f.GeoLat = &req.Filters.Geo.Lat
			f.GeoLng = &req.Filters.Geo.Lng
			f.GeoRadius = &req.Filters.Geo.RadiusKm
		}
		fields.Filters = &f
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("marshal cache key fields: %w", err)
	}

	hash := sha256.Sum256(data)
	return KeyPrefix + hex.EncodeToString(hash[:]), nil
}

// isoDate formats a date as an ISO date string, or nil when absent.
func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
