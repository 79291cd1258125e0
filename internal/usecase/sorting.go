package usecase

import (
	"sort"

	"github.com/tripsage/unified-travel-search/internal/domain"
)

// sortItems orders the result list. Price and rating sorts honor the
// requested direction, with items lacking the sorted-on field always placed
// after all items possessing it. Relevance ignores the requested direction
// entirely: it is always descending.
func sortItems(items []domain.ResultItem, sortBy domain.SortOption, order domain.SortOrder) []domain.ResultItem {
	if len(items) <= 1 {
		return items
	}

	result := make([]domain.ResultItem, len(items))
	copy(result, items)

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return lessByOptionalField(result[i].Price, result[j].Price, order)
		})
	case domain.SortByRating:
		sort.SliceStable(result, func(i, j int) bool {
			return lessByOptionalField(result[i].Rating, result[j].Rating, order)
		})
	case domain.SortByRelevance:
		fallthrough
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].RelevanceScore > result[j].RelevanceScore
		})
	}

	return result
}

// lessByOptionalField compares two optional float fields for sorting.
// A nil field sorts after every non-nil field regardless of direction.
func lessByOptionalField(a, b *float64, order domain.SortOrder) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	if order == domain.SortAsc {
		return *a < *b
	}
	return *a > *b
}
