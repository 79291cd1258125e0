// Package accommodation provides the search provider adapter for
// lodging. It wraps a property-listing backend and normalizes nightly
// rates and guest ratings into the canonical result model.
package accommodation

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// Backend is the narrow contract to the accommodation backend.
type Backend interface {
	// FindProperties returns the backend's native property listings for
	// a destination.
	FindProperties(ctx context.Context, destination string, params domain.ProviderParams) ([]Property, error)
}

// Property is the backend's native record for one lodging listing.
type Property struct {
	PropertyID   string   `json:"property_id"`
	Name         string   `json:"name"`
	Kind         string   `json:"kind,omitempty"`
	Address      string   `json:"address,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	NightlyRate  *float64 `json:"nightly_rate,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	GuestRating  *float64 `json:"guest_rating,omitempty"`
	ReviewCount  int      `json:"review_count,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	DistanceKm   *float64 `json:"distance_km,omitempty"`
	FreeCancel   bool     `json:"free_cancel,omitempty"`
	RoomsLeft    int      `json:"rooms_left,omitempty"`
	CheckInHour  int      `json:"check_in_hour,omitempty"`
	CheckOutHour int      `json:"check_out_hour,omitempty"`
}

// Adapter implements domain.SearchProvider for accommodations.
type Adapter struct {
	backend Backend
}

// NewAdapter creates an accommodation adapter over the given backend.
func NewAdapter(backend Backend) *Adapter {
	return &Adapter{backend: backend}
}

// Type implements domain.SearchProvider.Type.
func (a *Adapter) Type() domain.ResourceType {
	return domain.TypeAccommodation
}

// Search implements domain.SearchProvider.Search. The orchestrator only
// invokes this adapter when a destination is present.
func (a *Adapter) Search(ctx context.Context, params domain.ProviderParams) ([]domain.ResultItem, error) {
	properties, err := a.backend.FindProperties(ctx, params.Destination, params)
	if err != nil {
		return nil, fmt.Errorf("accommodation backend: %w", err)
	}

	items := make([]domain.ResultItem, 0, len(properties))
	for _, p := range properties {
		item := normalizeProperty(p)
		if params.RatingFloor != nil && item.Rating != nil && *item.Rating < *params.RatingFloor {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// normalizeProperty converts a single backend property into a result item.
func normalizeProperty(p Property) domain.ResultItem {
	currency := p.Currency
	if p.NightlyRate != nil && currency == "" {
		currency = "USD"
	}

	item := domain.ResultItem{
		ID:             "accommodation-" + p.PropertyID,
		Type:           domain.TypeAccommodation,
		Title:          p.Name,
		Description:    describeProperty(p),
		ImageURL:       p.ImageURL,
		Price:          p.NightlyRate,
		Currency:       currency,
		Location:       p.Address,
		Rating:         p.GuestRating,
		ReviewCount:    p.ReviewCount,
		RelevanceScore: propertyRelevance(p),
		QuickActions: []domain.QuickAction{
			{Action: "book_room", Label: "Book room"},
			{Action: "view_details", Label: "View details"},
		},
		Metadata: map[string]interface{}{
			"kind":        propertyKind(p),
			"amenities":   p.Amenities,
			"free_cancel": p.FreeCancel,
		},
	}
	if p.DistanceKm != nil {
		item.Metadata["distance_km"] = *p.DistanceKm
	}
	if p.RoomsLeft > 0 {
		item.Metadata["rooms_left"] = p.RoomsLeft
	}
	return item
}

// propertyKind normalizes the backend's listing kind, defaulting to hotel.
func propertyKind(p Property) string {
	if p.Kind == "" {
		return "hotel"
	}
	return p.Kind
}

// describeProperty builds the display description for a listing.
func describeProperty(p Property) string {
	kind := propertyKind(p)
	if p.DistanceKm != nil {
		return fmt.Sprintf("%s %.1f km from the center", kind, *p.DistanceKm)
	}
	return fmt.Sprintf("%s in %s", kind, p.Address)
}

// propertyRelevance scores a listing on guest rating, with a small boost
// for well-reviewed properties. Unrated listings get a neutral score.
func propertyRelevance(p Property) float64 {
	if p.GuestRating == nil {
		return 0.5
	}
	score := *p.GuestRating / 5.0
	if p.ReviewCount >= 100 {
		score += 0.05
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// FileBackend loads a canned property response from a JSON file.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend reading the given response file.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// propertiesResponse is the backend's native response envelope.
type propertiesResponse struct {
	Status     string     `json:"status"`
	Properties []Property `json:"properties"`
}

// FindProperties implements Backend.
func (b *FileBackend) FindProperties(_ context.Context, _ string, _ domain.ProviderParams) ([]Property, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("read properties response: %w", err)
	}

	var resp propertiesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse properties response: %w", err)
	}
	if resp.Status != "" && resp.Status != "OK" {
		return nil, fmt.Errorf("accommodation backend status %q", resp.Status)
	}

	return resp.Properties, nil
}

// Compile-time interface checks.
var (
	_ domain.SearchProvider = (*Adapter)(nil)
	_ Backend               = (*FileBackend)(nil)
)
