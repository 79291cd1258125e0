package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnifiedSearchRequest_Validate tests request validation field by field.
func TestUnifiedSearchRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   UnifiedSearchRequest
		wantErr   bool
		errFields []string
	}{
		{
			name:    "minimal valid request",
			request: UnifiedSearchRequest{Query: "hotels in paris"},
			wantErr: false,
		},
		{
			name: "valid request with all options",
			request: UnifiedSearchRequest{
				Query:       "romantic weekend",
				Types:       []string{"accommodation", "activity"},
				Destination: "Paris, France",
				StartDate:   "2026-09-10",
				EndDate:     "2026-09-12",
				Travelers:   &TravelersDTO{Adults: 2},
				Filters: &FiltersDTO{
					PriceMin:  floatPtr(50),
					PriceMax:  floatPtr(400),
					RatingMin: floatPtr(4.0),
					Geo:       &GeoFilterDTO{Lat: 48.8566, Lng: 2.3522, RadiusKm: 25},
				},
				SortBy:    "price",
				SortOrder: "asc",
			},
			wantErr: false,
		},
		{
			name:      "empty query",
			request:   UnifiedSearchRequest{Query: ""},
			wantErr:   true,
			errFields: []string{"query"},
		},
		{
			name:      "whitespace-only query",
			request:   UnifiedSearchRequest{Query: "   "},
			wantErr:   true,
			errFields: []string{"query"},
		},
		{
			name:      "query too long",
			request:   UnifiedSearchRequest{Query: strings.Repeat("q", 501)},
			wantErr:   true,
			errFields: []string{"query"},
		},
		{
			name:      "unknown type",
			request:   UnifiedSearchRequest{Query: "paris", Types: []string{"cruise"}},
			wantErr:   true,
			errFields: []string{"types[0]"},
		},
		{
			name:      "bad date format",
			request:   UnifiedSearchRequest{Query: "paris", StartDate: "10/09/2026"},
			wantErr:   true,
			errFields: []string{"start_date"},
		},
		{
			name:      "impossible date",
			request:   UnifiedSearchRequest{Query: "paris", StartDate: "2026-02-30"},
			wantErr:   true,
			errFields: []string{"start_date"},
		},
		{
			name:      "end before start",
			request:   UnifiedSearchRequest{Query: "paris", StartDate: "2026-09-12", EndDate: "2026-09-10"},
			wantErr:   true,
			errFields: []string{"end_date"},
		},
		{
			name:      "negative travelers",
			request:   UnifiedSearchRequest{Query: "paris", Travelers: &TravelersDTO{Adults: -1, Children: -2}},
			wantErr:   true,
			errFields: []string{"travelers.adults", "travelers.children"},
		},
		{
			name:      "unknown sort field",
			request:   UnifiedSearchRequest{Query: "paris", SortBy: "distance"},
			wantErr:   true,
			errFields: []string{"sort_by"},
		},
		{
			name:      "unknown sort order",
			request:   UnifiedSearchRequest{Query: "paris", SortOrder: "sideways"},
			wantErr:   true,
			errFields: []string{"sort_order"},
		},
		{
			name: "price min above max",
			request: UnifiedSearchRequest{
				Query:   "paris",
				Filters: &FiltersDTO{PriceMin: floatPtr(300), PriceMax: floatPtr(100)},
			},
			wantErr:   true,
			errFields: []string{"filters.price_min"},
		},
		{
			name: "negative prices",
			request: UnifiedSearchRequest{
				Query:   "paris",
				Filters: &FiltersDTO{PriceMin: floatPtr(-1), PriceMax: floatPtr(-5)},
			},
			wantErr:   true,
			errFields: []string{"filters.price_min", "filters.price_max"},
		},
		{
			name: "rating out of range",
			request: UnifiedSearchRequest{
				Query:   "paris",
				Filters: &FiltersDTO{RatingMin: floatPtr(5.5)},
			},
			wantErr:   true,
			errFields: []string{"filters.rating_min"},
		},
		{
			name: "geo bounds",
			request: UnifiedSearchRequest{
				Query:   "paris",
				Filters: &FiltersDTO{Geo: &GeoFilterDTO{Lat: 91, Lng: 181, RadiusKm: 0}},
			},
			wantErr:   true,
			errFields: []string{"filters.geo.lat", "filters.geo.lng", "filters.geo.radius_km"},
		},
		{
			name: "multiple errors",
			request: UnifiedSearchRequest{
				Query:     "",
				Types:     []string{"submarine"},
				StartDate: "yesterday",
			},
			wantErr:   true,
			errFields: []string{"query", "types[0]", "start_date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErrs *ValidationErrors
			require.ErrorAs(t, err, &validationErrs)

			details := validationErrs.ToMap()
			for _, field := range tt.errFields {
				assert.Contains(t, details, field)
			}
		})
	}
}

// TestUnifiedSearchRequest_TypeNormalization verifies types are lowercased
// in place during validation.
func TestUnifiedSearchRequest_TypeNormalization(t *testing.T) {
	req := UnifiedSearchRequest{
		Query: "paris",
		Types: []string{"Flight", " ACCOMMODATION "},
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, []string{"flight", "accommodation"}, req.Types)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := &ValidationErrors{}
	assert.Equal(t, "validation failed", errs.Error())
	assert.False(t, errs.HasErrors())

	errs.Add("query", "query is required")
	assert.Equal(t, "query is required", errs.Error())
	assert.True(t, errs.HasErrors())
}

func floatPtr(f float64) *float64 { return &f }
