package activity

import (
	"fmt"
	"strings"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// Place is the backend's native record for one activity venue.
type Place struct {
	PlaceID     string   `json:"place_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Types       []string `json:"types"`

	// PriceLevel is the backend's coarse price tier (0-4). Nil means the
	// backend supplied no price signal at all.
	PriceLevel *int `json:"price_level,omitempty"`

	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	Vicinity         string   `json:"vicinity,omitempty"`
	PhotoURL         string   `json:"photo_url,omitempty"`

	// DurationMinutes is supplied by some backends; zero means absent.
	DurationMinutes int `json:"duration_minutes,omitempty"`
}

// Activity categories assigned from backend type keywords.
const (
	CategoryCultural      = "cultural"
	CategoryFood          = "food"
	CategoryNature        = "nature"
	CategoryTour          = "tour"
	CategoryEntertainment = "entertainment"
	CategoryGeneral       = "general"
)

// categoryKeyword maps one backend type keyword to a category.
type categoryKeyword struct {
	keyword  string
	category string
}

// categoryKeywords is the priority-ordered keyword table: the first keyword
// present in a place's type list wins; places matching none fall through to
// the general catch-all.
var categoryKeywords = []categoryKeyword{
	{"museum", CategoryCultural},
	{"art_gallery", CategoryCultural},
	{"church", CategoryCultural},
	{"restaurant", CategoryFood},
	{"cafe", CategoryFood},
	{"bakery", CategoryFood},
	{"park", CategoryNature},
	{"beach", CategoryNature},
	{"zoo", CategoryNature},
	{"tourist_attraction", CategoryTour},
	{"travel_agency", CategoryTour},
	{"amusement_park", CategoryEntertainment},
	{"night_club", CategoryEntertainment},
}

// categoryBasePrice is the per-category base price in USD used to estimate
// a concrete price from the backend's coarse tier.
var categoryBasePrice = map[string]float64{
	CategoryCultural:      20.0,
	CategoryFood:          30.0,
	CategoryNature:        10.0,
	CategoryTour:          40.0,
	CategoryEntertainment: 35.0,
	CategoryGeneral:       25.0,
}

// tierMultipliers maps price tiers 0-4 to price multipliers.
var tierMultipliers = [5]float64{0, 1.0, 1.5, 2.5, 4.0}

// categoryDurations estimates activity duration in minutes per category.
var categoryDurations = map[string]int{
	CategoryCultural:      120,
	CategoryFood:          90,
	CategoryNature:        180,
	CategoryTour:          240,
	CategoryEntertainment: 150,
}

// DefaultDurationMinutes is the duration estimate for unrecognized
// categories.
const DefaultDurationMinutes = 120

// normalize converts backend places into canonical result items.
func normalize(places []Place, destination string) []domain.ResultItem {
	items := make([]domain.ResultItem, 0, len(places))
	for _, p := range places {
		items = append(items, normalizePlace(p, destination))
	}
	return items
}

// normalizePlace converts a single place into a result item.
func normalizePlace(p Place, destination string) domain.ResultItem {
	category := categorize(p.Types)

	item := domain.ResultItem{
		ID:             "activity-" + p.PlaceID,
		Type:           domain.TypeActivity,
		Title:          p.Name,
		Description:    describe(p, category),
		ImageURL:       p.PhotoURL,
		Currency:       "USD",
		Location:       location(p, destination),
		ReviewCount:    p.UserRatingsTotal,
		RelevanceScore: relevance(p),
		Metadata: map[string]interface{}{
			"category":         category,
			"duration_minutes": estimateDuration(p, category),
		},
		QuickActions: []domain.QuickAction{
			{Action: "add_to_itinerary", Label: "Add to itinerary"},
			{Action: "view_details", Label: "View details"},
		},
	}

	if p.Rating != nil {
		r := clampRating(*p.Rating)
		item.Rating = &r
	}
	if p.PriceLevel != nil {
		price := EstimatePrice(category, *p.PriceLevel)
		item.Price = &price
	}

	return item
}

// categorize assigns a category from the priority-ordered keyword table.
// The first table keyword found in the place's type list wins.
func categorize(types []string) string {
	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[strings.ToLower(t)] = true
	}

	for _, ck := range categoryKeywords {
		if typeSet[ck.keyword] {
			return ck.category
		}
	}
	return CategoryGeneral
}

// EstimatePrice maps a coarse price tier to an estimated amount: the
// category base price times the tier multiplier. Tiers outside 0-4,
// including negative ones, clamp to the tier-4 multiplier so malformed
// backend values still resolve to a defined price.
func EstimatePrice(category string, tier int) float64 {
	base, ok := categoryBasePrice[category]
	if !ok {
		base = categoryBasePrice[CategoryGeneral]
	}

	if tier < 0 || tier > 4 {
		tier = 4
	}
	return base * tierMultipliers[tier]
}

// estimateDuration returns the backend-supplied duration when present,
// otherwise the per-category estimate.
func estimateDuration(p Place, category string) int {
	if p.DurationMinutes > 0 {
		return p.DurationMinutes
	}
	if minutes, ok := categoryDurations[category]; ok {
		return minutes
	}
	return DefaultDurationMinutes
}

// clampRating forces a backend rating into the 0..5 domain.
func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

// relevance is the fixed relevance heuristic: rating-weighted with a bonus
// for well-reviewed places, clamped to 0..1.
func relevance(p Place) float64 {
	score := 0.5
	if p.Rating != nil {
		score = clampRating(*p.Rating) / 5.0
	}
	if p.UserRatingsTotal >= 100 {
		score += 0.05
	}
	if score > 1 {
		score = 1
	}
	return score
}

// describe builds a short description when the backend supplies none.
func describe(p Place, category string) string {
	if p.Description != "" {
		return p.Description
	}
	return fmt.Sprintf("%s activity in the %s category", p.Name, category)
}

// location prefers the backend's vicinity over the requested destination.
func location(p Place, destination string) string {
	if p.Vicinity != "" {
		return p.Vicinity
	}
	return destination
}
