package usecase

import "github.com/tripsage/unified-travel-search/internal/domain"

// applyFilters applies the unified filter set across all result types.
// Items missing a filtered field pass through (lenient-filter policy, see
// domain.Filters.MatchesItem).
func applyFilters(items []domain.ResultItem, filters *domain.Filters) []domain.ResultItem {
	if filters == nil {
		return items
	}

	result := make([]domain.ResultItem, 0, len(items))
	for _, item := range items {
		if filters.MatchesItem(item) {
			result = append(result, item)
		}
	}
	return result
}
