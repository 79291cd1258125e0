package activity

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

// stubBackend returns fixed places or an error.
type stubBackend struct {
	places []Place
	err    error
}

func (s *stubBackend) FindPlaces(context.Context, string, string) ([]Place, error) {
	return s.places, s.err
}

func TestAdapter_Type(t *testing.T) {
	adapter := NewAdapter(&stubBackend{})
	assert.Equal(t, domain.TypeActivity, adapter.Type())
}

func TestAdapter_ImplementsInterface(t *testing.T) {
	var _ domain.SearchProvider = (*Adapter)(nil)
}

func TestAdapter_Search(t *testing.T) {
	tests := []struct {
		name       string
		backend    stubBackend
		params     domain.ProviderParams
		wantItems  int
		wantErr    bool
		checkFirst func(*testing.T, domain.ResultItem)
	}{
		{
			name: "normalizes a museum place",
			backend: stubBackend{places: []Place{{
				PlaceID:          "p1",
				Name:             "Metropolitan Museum of Art",
				Types:            []string{"museum", "tourist_attraction"},
				PriceLevel:       intPtr(2),
				Rating:           floatPtr(4.8),
				UserRatingsTotal: 54000,
				Vicinity:         "1000 5th Ave, New York",
			}}},
			params:    domain.ProviderParams{Query: "museums", Destination: "New York, NY"},
			wantItems: 1,
			checkFirst: func(t *testing.T, item domain.ResultItem) {
				assert.Equal(t, "activity-p1", item.ID)
				assert.Equal(t, domain.TypeActivity, item.Type)
				assert.Equal(t, "Metropolitan Museum of Art", item.Title)
				// "museum" outranks "tourist_attraction" in the table.
				assert.Equal(t, CategoryCultural, item.Metadata["category"])
				// cultural base 20.0 at tier 2 => 30.0
				require.NotNil(t, item.Price)
				assert.Equal(t, 30.0, *item.Price)
				assert.Equal(t, "USD", item.Currency)
				require.NotNil(t, item.Rating)
				assert.Equal(t, 4.8, *item.Rating)
				assert.Equal(t, 54000, item.ReviewCount)
				assert.Equal(t, "1000 5th Ave, New York", item.Location)
				assert.Equal(t, 120, item.Metadata["duration_minutes"])
				assert.Greater(t, item.RelevanceScore, 0.9)
				assert.NotEmpty(t, item.QuickActions)
			},
		},
		{
			name:      "empty backend response returns empty slice",
			backend:   stubBackend{places: []Place{}},
			params:    domain.ProviderParams{Destination: "Paris"},
			wantItems: 0,
		},
		{
			name:    "backend failure propagates",
			backend: stubBackend{err: errors.New("upstream 503")},
			params:  domain.ProviderParams{Destination: "Paris"},
			wantErr: true,
		},
		{
			name: "rating floor filters normalized items",
			backend: stubBackend{places: []Place{
				{PlaceID: "lo", Name: "Low", Rating: floatPtr(3.0)},
				{PlaceID: "hi", Name: "High", Rating: floatPtr(4.9)},
				{PlaceID: "none", Name: "Unrated"},
			}},
			params: domain.ProviderParams{
				Destination: "Rome",
				RatingFloor: floatPtr(4.0),
			},
			wantItems: 2, // the 4.9-rated and the unrated item survive
		},
		{
			name: "place without price level has nil price",
			backend: stubBackend{places: []Place{{
				PlaceID: "p2",
				Name:    "Central Park",
				Types:   []string{"park"},
			}}},
			params:    domain.ProviderParams{Destination: "New York, NY"},
			wantItems: 1,
			checkFirst: func(t *testing.T, item domain.ResultItem) {
				assert.Nil(t, item.Price)
				assert.Equal(t, CategoryNature, item.Metadata["category"])
				assert.Equal(t, 180, item.Metadata["duration_minutes"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewAdapter(&tt.backend)

			items, err := adapter.Search(context.Background(), tt.params)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, items, tt.wantItems)
			if tt.checkFirst != nil {
				tt.checkFirst(t, items[0])
			}
		})
	}
}

func TestFileBackend(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("parses a valid response file", func(t *testing.T) {
		path := filepath.Join(tempDir, "places.json")
		content := `{
			"status": "OK",
			"places": [
				{"place_id": "a", "name": "Museo del Prado", "types": ["museum"], "price_level": 1, "rating": 4.7}
			]
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		places, err := NewFileBackend(path).FindPlaces(context.Background(), "museums", "Madrid")
		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.Equal(t, "Museo del Prado", places[0].Name)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := NewFileBackend(filepath.Join(tempDir, "nope.json")).FindPlaces(context.Background(), "", "")
		assert.Error(t, err)
	})

	t.Run("error status fails", func(t *testing.T) {
		path := filepath.Join(tempDir, "error.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"status":"OVER_QUERY_LIMIT","places":[]}`), 0o600))

		_, err := NewFileBackend(path).FindPlaces(context.Background(), "", "")
		assert.Error(t, err)
	})
}
