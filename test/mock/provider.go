// Package mock provides test doubles for the unified search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// Provider is a configurable mock implementation of domain.SearchProvider.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and partial failures.
type Provider struct {
	resourceType domain.ResourceType
	items        []domain.ResultItem
	err          error
	delay        time.Duration
	callCount    int
	mu           sync.Mutex
}

// NewProvider creates a new mock provider serving the given resource type.
// The provider is configured using the builder pattern methods.
func NewProvider(t domain.ResourceType) *Provider {
	return &Provider{
		resourceType: t,
		items:        nil,
		err:          nil,
		delay:        0,
	}
}

// WithItems configures the provider to return the given results.
func (p *Provider) WithItems(items []domain.ResultItem) *Provider {
	p.items = items
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Type returns the resource type this provider serves.
func (p *Provider) Type() domain.ResourceType {
	return p.resourceType
}

// Search implements domain.SearchProvider.Search.
// It respects context cancellation, applies configured delay,
// and returns configured items or error.
func (p *Provider) Search(ctx context.Context, params domain.ProviderParams) ([]domain.ResultItem, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	// Apply delay if configured
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	// Check context after delay
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Return configured error if set
	if p.err != nil {
		return nil, p.err
	}

	// Return configured items
	return p.items, nil
}

// CallCount returns the number of times Search was called.
// This is useful for verifying provider interactions.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.SearchProvider at compile time.
var _ domain.SearchProvider = (*Provider)(nil)

// SampleItems returns a slice of sample results of the given type for
// testing. The items have all required fields populated with realistic
// values, priced and rated so filter and sort paths are exercised.
func SampleItems(t domain.ResourceType, count int) []domain.ResultItem {
	items := make([]domain.ResultItem, count)

	for i := 0; i < count; i++ {
		price := 80.0 + float64(i*40)
		rating := 3.5 + float64(i%3)*0.5

		items[i] = domain.ResultItem{
			ID:             fmt.Sprintf("%s-%d", t, i+1),
			Type:           t,
			Title:          sampleTitle(t, i),
			Description:    fmt.Sprintf("Sample %s result %d", t, i+1),
			Price:          &price,
			Currency:       "USD",
			Location:       "New York",
			Rating:         &rating,
			ReviewCount:    100 + i*50,
			RelevanceScore: 0.9 - float64(i)*0.05,
			QuickActions:   sampleQuickActions(t),
		}
	}

	return items
}

// sampleTitle produces a distinct, plausible title per type and index.
func sampleTitle(t domain.ResourceType, index int) string {
	switch t {
	case domain.TypeDestination:
		return fmt.Sprintf("Destination %d", index+1)
	case domain.TypeFlight:
		return fmt.Sprintf("UA %d JFK - LAX", 100+index)
	case domain.TypeAccommodation:
		return fmt.Sprintf("Hotel Sample %d", index+1)
	case domain.TypeActivity:
		return fmt.Sprintf("City Tour %d", index+1)
	default:
		return fmt.Sprintf("Result %d", index+1)
	}
}

// sampleQuickActions mirrors the per-type actions the real adapters attach.
func sampleQuickActions(t domain.ResourceType) []domain.QuickAction {
	switch t {
	case domain.TypeFlight:
		return []domain.QuickAction{{Action: "select_flight", Label: "Select flight"}}
	case domain.TypeAccommodation:
		return []domain.QuickAction{{Action: "book_room", Label: "Book room"}}
	case domain.TypeActivity:
		return []domain.QuickAction{{Action: "add_to_itinerary", Label: "Add to itinerary"}}
	default:
		return []domain.QuickAction{{Action: "explore", Label: "Explore"}}
	}
}
