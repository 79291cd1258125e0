// Package destination provides the search provider adapter for
// destinations. It synthesizes a single high-relevance result echoing the
// requested destination; a production deployment would swap in a
// geocoding-backed Backend.
package destination

import (
	"context"
	"fmt"
	"strings"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// Backend resolves a query or destination string into destination records.
type Backend interface {
	Resolve(ctx context.Context, queryOrDestination string) ([]Record, error)
}

// Record is the backend's native destination record.
type Record struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
}

// Adapter implements domain.SearchProvider for destinations.
type Adapter struct {
	backend Backend
}

// NewAdapter creates a destination adapter over the given backend.
func NewAdapter(backend Backend) *Adapter {
	return &Adapter{backend: backend}
}

// Type implements domain.SearchProvider.Type.
func (a *Adapter) Type() domain.ResourceType {
	return domain.TypeDestination
}

// Search implements domain.SearchProvider.Search.
func (a *Adapter) Search(ctx context.Context, params domain.ProviderParams) ([]domain.ResultItem, error) {
	query := params.Destination
	if query == "" {
		query = params.Query
	}

	records, err := a.backend.Resolve(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("destination backend: %w", err)
	}

	items := make([]domain.ResultItem, 0, len(records))
	for _, r := range records {
		item := domain.ResultItem{
			ID:             "destination-" + r.ID,
			Type:           domain.TypeDestination,
			Title:          r.Name,
			Description:    r.Description,
			ImageURL:       r.ImageURL,
			Location:       r.Name,
			RelevanceScore: 0.95,
			MatchReasons:   []string{"destination match"},
			QuickActions: []domain.QuickAction{
				{Action: "explore", Label: "Explore " + r.Name},
			},
		}
		if r.Lat != 0 || r.Lng != 0 {
			item.Metadata = map[string]interface{}{
				"lat": r.Lat,
				"lng": r.Lng,
			}
		}
		items = append(items, item)
	}

	return items, nil
}

// EchoBackend is the reference Backend: it synthesizes one record echoing
// the requested destination name.
type EchoBackend struct{}

// NewEchoBackend creates the echo backend.
func NewEchoBackend() *EchoBackend {
	return &EchoBackend{}
}

// Resolve implements Backend.
func (EchoBackend) Resolve(_ context.Context, queryOrDestination string) ([]Record, error) {
	name := strings.TrimSpace(queryOrDestination)
	if name == "" {
		return []Record{}, nil
	}

	return []Record{{
		ID:          slug(name),
		Name:        name,
		Description: fmt.Sprintf("Explore %s and discover what it has to offer", name),
	}}, nil
}

// slug builds a stable identifier from a destination name.
func slug(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, ",", "")
	return strings.ReplaceAll(s, " ", "-")
}

// Compile-time interface checks.
var (
	_ domain.SearchProvider = (*Adapter)(nil)
	_ Backend               = (*EchoBackend)(nil)
)
