// Package activity provides the search provider adapter for activities.
// It wraps a places-style backend and normalizes its native response into
// the canonical result model.
package activity

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// Backend is the narrow contract to the activity search backend.
type Backend interface {
	// FindPlaces returns the backend's native place records for a
	// destination-scoped query.
	FindPlaces(ctx context.Context, query, destination string) ([]Place, error)
}

// Adapter implements domain.SearchProvider for activities.
type Adapter struct {
	backend Backend
}

// NewAdapter creates an activity adapter over the given backend.
func NewAdapter(backend Backend) *Adapter {
	return &Adapter{backend: backend}
}

// Type implements domain.SearchProvider.Type.
func (a *Adapter) Type() domain.ResourceType {
	return domain.TypeActivity
}

// Search implements domain.SearchProvider.Search. Backend failures
// propagate as a single error; "no results" is an empty slice, never an
// error. A rating floor in the params is pushed down as a post-normalize
// cut so the backend stays dumb.
func (a *Adapter) Search(ctx context.Context, params domain.ProviderParams) ([]domain.ResultItem, error) {
	places, err := a.backend.FindPlaces(ctx, params.Query, params.Destination)
	if err != nil {
		return nil, fmt.Errorf("activity backend: %w", err)
	}

	items := normalize(places, params.Destination)

	if params.RatingFloor != nil {
		kept := items[:0]
		for _, item := range items {
			if item.Rating == nil || *item.Rating >= *params.RatingFloor {
				kept = append(kept, item)
			}
		}
		items = kept
	}

	return items, nil
}

// FileBackend loads a canned places response from a JSON file. It mirrors
// a real backend's response shape and is used for local development and
// integration tests.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend reading the given response file.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// placesResponse is the backend's native response envelope.
type placesResponse struct {
	Status string  `json:"status"`
	Places []Place `json:"places"`
}

// FindPlaces implements Backend.
func (b *FileBackend) FindPlaces(_ context.Context, _, _ string) ([]Place, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("read places response: %w", err)
	}

	var resp placesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse places response: %w", err)
	}
	if resp.Status != "" && resp.Status != "OK" {
		return nil, fmt.Errorf("places backend status %q", resp.Status)
	}

	return resp.Places, nil
}

// Compile-time interface checks.
var (
	_ domain.SearchProvider = (*Adapter)(nil)
	_ Backend               = (*FileBackend)(nil)
)
