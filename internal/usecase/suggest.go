package usecase

import (
	"fmt"
	"strings"
)

// knownDestinations is the fixed vocabulary matched for destination
// autocomplete suggestions.
var knownDestinations = []string{
	"New York, NY",
	"Los Angeles, CA",
	"San Francisco, CA",
	"Chicago, IL",
	"Miami, FL",
	"London, UK",
	"Paris, France",
	"Rome, Italy",
	"Barcelona, Spain",
	"Amsterdam, Netherlands",
	"Tokyo, Japan",
	"Kyoto, Japan",
	"Singapore",
	"Bangkok, Thailand",
	"Bali, Indonesia",
	"Sydney, Australia",
}

// activityPhrases is the fixed list of activity-type phrases used to
// synthesize "<activity> in <query>" suggestions.
var activityPhrases = []string{
	"things to do",
	"museums",
	"restaurants",
	"tours",
	"outdoor activities",
	"nightlife",
}

// minQueryLenForActivities is the partial-query length above which activity
// phrase suggestions are synthesized.
const minQueryLenForActivities = 2

// Suggest implements UnifiedSearchUseCase.Suggest. Destination matches come
// first, then activity-phrase suggestions, truncated to limit. This path is
// pure in-memory pattern matching: it never calls a provider adapter.
func (uc *unifiedSearchUseCase) Suggest(partial string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	suggestions, err := buildSuggestions(partial)
	if err != nil {
		return nil, fmt.Errorf("suggestion generation failed: %w", err)
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// buildSuggestions assembles the full, untruncated suggestion list.
func buildSuggestions(partial string) ([]string, error) {
	trimmed := strings.TrimSpace(partial)
	if trimmed == "" {
		return []string{}, nil
	}

	lowered := strings.ToLower(trimmed)
	suggestions := make([]string, 0, len(knownDestinations)+len(activityPhrases))

	for _, dest := range knownDestinations {
		if strings.Contains(strings.ToLower(dest), lowered) {
			suggestions = append(suggestions, dest)
		}
	}

	if len(trimmed) > minQueryLenForActivities {
		for _, phrase := range activityPhrases {
			suggestions = append(suggestions, fmt.Sprintf("%s in %s", phrase, trimmed))
		}
	}

	return suggestions, nil
}
