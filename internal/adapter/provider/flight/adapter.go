// Package flight provides the search provider adapter for flights. It
// wraps an offers-style backend and normalizes its native response into
// the canonical result model.
package flight

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// Backend is the narrow contract to the flight search backend.
type Backend interface {
	// FindOffers returns the backend's native flight offers for a route.
	FindOffers(ctx context.Context, origin, destination string, params domain.ProviderParams) ([]Offer, error)
}

// Offer is the backend's native record for one flight offer.
type Offer struct {
	OfferID      string  `json:"offer_id"`
	Carrier      string  `json:"carrier"`
	CarrierCode  string  `json:"carrier_code"`
	FlightNumber string  `json:"flight_number"`
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	DepartsAt    string  `json:"departs_at"`
	ArrivesAt    string  `json:"arrives_at"`
	Stops        int     `json:"stops"`
	Cabin        string  `json:"cabin,omitempty"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// Adapter implements domain.SearchProvider for flights.
type Adapter struct {
	backend Backend
}

// NewAdapter creates a flight adapter over the given backend.
func NewAdapter(backend Backend) *Adapter {
	return &Adapter{backend: backend}
}

// Type implements domain.SearchProvider.Type.
func (a *Adapter) Type() domain.ResourceType {
	return domain.TypeFlight
}

// Search implements domain.SearchProvider.Search. The orchestrator only
// invokes this adapter when both origin and destination are present.
func (a *Adapter) Search(ctx context.Context, params domain.ProviderParams) ([]domain.ResultItem, error) {
	offers, err := a.backend.FindOffers(ctx, params.Origin, params.Destination, params)
	if err != nil {
		return nil, fmt.Errorf("flight backend: %w", err)
	}

	items := make([]domain.ResultItem, 0, len(offers))
	for _, offer := range offers {
		items = append(items, normalizeOffer(offer))
	}
	return items, nil
}

// normalizeOffer converts a single backend offer into a result item.
func normalizeOffer(o Offer) domain.ResultItem {
	amount := o.Amount
	currency := o.Currency
	if currency == "" {
		currency = "USD"
	}

	return domain.ResultItem{
		ID:             "flight-" + o.OfferID,
		Type:           domain.TypeFlight,
		Title:          fmt.Sprintf("%s %s: %s to %s", o.Carrier, o.FlightNumber, o.Origin, o.Destination),
		Description:    describeOffer(o),
		Price:          &amount,
		Currency:       currency,
		Location:       o.Origin,
		RelevanceScore: offerRelevance(o),
		QuickActions: []domain.QuickAction{
			{Action: "select_flight", Label: "Select flight"},
		},
		Metadata: map[string]interface{}{
			"carrier":       o.Carrier,
			"carrier_code":  o.CarrierCode,
			"flight_number": o.FlightNumber,
			"origin":        o.Origin,
			"destination":   o.Destination,
			"departs_at":    o.DepartsAt,
			"arrives_at":    o.ArrivesAt,
			"stops":         o.Stops,
			"cabin":         o.Cabin,
		},
	}
}

// describeOffer builds the display description for an offer.
func describeOffer(o Offer) string {
	if o.Stops == 0 {
		return fmt.Sprintf("Direct flight departing %s", o.DepartsAt)
	}
	return fmt.Sprintf("%d-stop flight departing %s", o.Stops, o.DepartsAt)
}

// offerRelevance is the fixed relevance heuristic for flights: direct
// flights rank above one-stop, which rank above the rest.
func offerRelevance(o Offer) float64 {
	switch o.Stops {
	case 0:
		return 0.9
	case 1:
		return 0.7
	default:
		return 0.5
	}
}

// FileBackend loads a canned offers response from a JSON file.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend reading the given response file.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// offersResponse is the backend's native response envelope.
type offersResponse struct {
	Status string  `json:"status"`
	Offers []Offer `json:"offers"`
}

// FindOffers implements Backend.
func (b *FileBackend) FindOffers(_ context.Context, _, _ string, _ domain.ProviderParams) ([]Offer, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("read offers response: %w", err)
	}

	var resp offersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse offers response: %w", err)
	}
	if resp.Status != "" && resp.Status != "OK" {
		return nil, fmt.Errorf("flight backend status %q", resp.Status)
	}

	return resp.Offers, nil
}

// Compile-time interface checks.
var (
	_ domain.SearchProvider = (*Adapter)(nil)
	_ Backend               = (*FileBackend)(nil)
)
