package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func baseRequest() domain.SearchRequest {
	return domain.SearchRequest{
		Query:       "museums in new york",
		Destination: "New York, NY",
		Travelers:   domain.Travelers{Adults: 2},
		SortBy:      domain.SortByRelevance,
		SortOrder:   domain.SortDesc,
	}
}

func TestKey_Deterministic(t *testing.T) {
	req := baseRequest()

	key1, err := Key(req, domain.DefaultResourceTypes())
	require.NoError(t, err)
	key2, err := Key(req, domain.DefaultResourceTypes())
	require.NoError(t, err)

	assert.Equal(t, key1, key2)
	assert.True(t, strings.HasPrefix(key1, KeyPrefix))
}

func TestKey_OmittedTypesEqualsExplicitDefaults(t *testing.T) {
	omitted := baseRequest()

	explicit := baseRequest()
	explicit.Types = domain.DefaultResourceTypes()

	key1, err := Key(omitted, domain.DefaultResourceTypes())
	require.NoError(t, err)
	key2, err := Key(explicit, domain.DefaultResourceTypes())
	require.NoError(t, err)

	assert.Equal(t, key1, key2)
}

func TestKey_TypeOrderIrrelevant(t *testing.T) {
	req1 := baseRequest()
	req1.Types = []domain.ResourceType{domain.TypeActivity, domain.TypeDestination}

	req2 := baseRequest()
	req2.Types = []domain.ResourceType{domain.TypeDestination, domain.TypeActivity}

	key1, err := Key(req1, domain.DefaultResourceTypes())
	require.NoError(t, err)
	key2, err := Key(req2, domain.DefaultResourceTypes())
	require.NoError(t, err)

	assert.Equal(t, key1, key2)
}

func TestKey_SemanticFieldsChangeKey(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	base := baseRequest()
	baseKey, err := Key(base, domain.DefaultResourceTypes())
	require.NoError(t, err)

	tests := []struct {
		name   string
		modify func(*domain.SearchRequest)
	}{
		{"different query", func(r *domain.SearchRequest) { r.Query = "beaches in bali" }},
		{"different destination", func(r *domain.SearchRequest) { r.Destination = "Paris, FR" }},
		{"different types", func(r *domain.SearchRequest) { r.Types = []domain.ResourceType{domain.TypeFlight} }},
		{"start date set", func(r *domain.SearchRequest) { r.StartDate = &start }},
		{"different travelers", func(r *domain.SearchRequest) { r.Travelers.Children = 1 }},
		{"different sort", func(r *domain.SearchRequest) { r.SortBy = domain.SortByPrice }},
		{"filters present", func(r *domain.SearchRequest) { r.Filters = &domain.Filters{RatingMin: floatPtr(4)} }},
		{"different filter bound", func(r *domain.SearchRequest) { r.Filters = &domain.Filters{RatingMin: floatPtr(4.5)} }},
		{"geo filter present", func(r *domain.SearchRequest) {
			r.Filters = &domain.Filters{Geo: &domain.GeoFilter{Lat: 40.7, Lng: -74.0, RadiusKm: 10}}
		}},
	}

	seen := map[string]string{baseKey: "base"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.modify(&req)

			key, err := Key(req, domain.DefaultResourceTypes())
			require.NoError(t, err)

			if prior, dup := seen[key]; dup {
				t.Fatalf("key collision between %q and %q", prior, tt.name)
			}
			seen[key] = tt.name
		})
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, found := c.Get(ctx, "missing")
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, found := c.Get(ctx, "k")
	assert.True(t, found)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, c.Delete(ctx, "k"))
	_, found = c.Get(ctx, "k")
	assert.False(t, found)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), -time.Second))
	_, found := c.Get(ctx, "k")
	assert.False(t, found)
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, found := c.Get(ctx, "k")
	assert.False(t, found)
}
