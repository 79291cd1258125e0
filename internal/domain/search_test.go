package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validRequest() SearchRequest {
	return SearchRequest{
		Query:     "museums in new york",
		Travelers: Travelers{Adults: 2},
	}
}

func TestSearchRequest_Validate(t *testing.T) {
	past := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		modify  func(*SearchRequest)
		wantErr string
	}{
		{
			name:   "valid minimal request",
			modify: func(r *SearchRequest) {},
		},
		{
			name:    "empty query rejected",
			modify:  func(r *SearchRequest) { r.Query = "" },
			wantErr: "query is required",
		},
		{
			name:    "query over max length rejected",
			modify:  func(r *SearchRequest) { r.Query = strings.Repeat("a", 501) },
			wantErr: "at most 500",
		},
		{
			name:   "query at max length accepted",
			modify: func(r *SearchRequest) { r.Query = strings.Repeat("a", 500) },
		},
		{
			name:    "unknown resource type rejected",
			modify:  func(r *SearchRequest) { r.Types = []ResourceType{"cruise"} },
			wantErr: "unknown resource type",
		},
		{
			name: "valid types accepted",
			modify: func(r *SearchRequest) {
				r.Types = []ResourceType{TypeDestination, TypeActivity}
			},
		},
		{
			name: "end date before start date rejected",
			modify: func(r *SearchRequest) {
				r.StartDate = &later
				r.EndDate = &past
			},
			wantErr: "end_date",
		},
		{
			name:    "zero adults rejected",
			modify:  func(r *SearchRequest) { r.Travelers.Adults = 0 },
			wantErr: "adults",
		},
		{
			name:    "negative children rejected",
			modify:  func(r *SearchRequest) { r.Travelers.Children = -1 },
			wantErr: "children",
		},
		{
			name:    "negative infants rejected",
			modify:  func(r *SearchRequest) { r.Travelers.Infants = -2 },
			wantErr: "infants",
		},
		{
			name:    "invalid sort field rejected",
			modify:  func(r *SearchRequest) { r.SortBy = "popularity" },
			wantErr: "sort_by",
		},
		{
			name:    "invalid sort order rejected",
			modify:  func(r *SearchRequest) { r.SortOrder = "up" },
			wantErr: "sort_order",
		},
		{
			name: "invalid filter bounds rejected",
			modify: func(r *SearchRequest) {
				bad := -1.0
				r.Filters = &Filters{PriceMin: &bad}
			},
			wantErr: "price_min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, IsInvalidRequest(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSearchRequest_SetDefaults(t *testing.T) {
	req := SearchRequest{Query: "beaches"}
	req.SetDefaults()

	assert.Equal(t, 1, req.Travelers.Adults)
	assert.Equal(t, SortByRelevance, req.SortBy)
	assert.Equal(t, SortDesc, req.SortOrder)
}

func TestSearchRequest_EffectiveTypes(t *testing.T) {
	defaults := DefaultResourceTypes()

	tests := []struct {
		name  string
		types []ResourceType
		want  []ResourceType
	}{
		{
			name:  "nil types resolves to default set",
			types: nil,
			want:  defaults,
		},
		{
			name:  "empty types resolves to default set",
			types: []ResourceType{},
			want:  defaults,
		},
		{
			name:  "duplicates removed preserving order",
			types: []ResourceType{TypeActivity, TypeActivity, TypeFlight},
			want:  []ResourceType{TypeActivity, TypeFlight},
		},
		{
			name:  "unsupported types dropped",
			types: []ResourceType{TypeDestination, "cruise"},
			want:  []ResourceType{TypeDestination},
		},
		{
			name:  "only unsupported types yields empty set",
			types: []ResourceType{"cruise"},
			want:  []ResourceType{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SearchRequest{Query: "q", Types: tt.types}
			assert.Equal(t, tt.want, req.EffectiveTypes(defaults))
		})
	}
}

func TestSearchRequest_EffectiveTypes_EmptyDefaults(t *testing.T) {
	req := SearchRequest{Query: "q"}
	assert.Empty(t, req.EffectiveTypes(nil))
}
