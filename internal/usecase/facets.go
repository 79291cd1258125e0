package usecase

import "github.com/tripsage/unified-travel-search/internal/domain"

// Facet display labels.
const (
	facetTypeLabel   = "Resource Type"
	facetPriceLabel  = "Price"
	facetRatingLabel = "Rating"
)

// deriveFacets builds the response facets from the pre-filter merged result
// set: a "type" terms facet, plus "price" and "rating" range facets over
// the items carrying those fields. A facet whose underlying value set is
// empty is omitted entirely.
func deriveFacets(items []domain.ResultItem) []domain.SearchFacet {
	facets := make([]domain.SearchFacet, 0, 3)

	if typeFacet := deriveTypeFacet(items); typeFacet != nil {
		facets = append(facets, *typeFacet)
	}
	if priceFacet := deriveRangeFacet(items, "price", facetPriceLabel, func(i domain.ResultItem) *float64 { return i.Price }); priceFacet != nil {
		facets = append(facets, *priceFacet)
	}
	if ratingFacet := deriveRangeFacet(items, "rating", facetRatingLabel, func(i domain.ResultItem) *float64 { return i.Rating }); ratingFacet != nil {
		facets = append(facets, *ratingFacet)
	}

	if len(facets) == 0 {
		return nil
	}
	return facets
}

// deriveTypeFacet counts results per resource type, in the fixed supported
// order so facet output is deterministic.
func deriveTypeFacet(items []domain.ResultItem) *domain.SearchFacet {
	if len(items) == 0 {
		return nil
	}

	counts := make(map[domain.ResourceType]int)
	for _, item := range items {
		counts[item.Type]++
	}

	buckets := make([]domain.FacetBucket, 0, len(counts))
	for _, t := range domain.DefaultResourceTypes() {
		if count, ok := counts[t]; ok {
			buckets = append(buckets, domain.FacetBucket{
				Value: string(t),
				Label: string(t),
				Count: count,
			})
		}
	}

	return &domain.SearchFacet{
		Field:   "type",
		Label:   facetTypeLabel,
		Kind:    domain.FacetTerms,
		Buckets: buckets,
	}
}

// deriveRangeFacet builds a single-bucket min/max/count facet over the
// items where extract returns a value. Returns nil when no item carries
// the field.
func deriveRangeFacet(items []domain.ResultItem, field, label string, extract func(domain.ResultItem) *float64) *domain.SearchFacet {
	var (
		minVal, maxVal float64
		count          int
	)

	for _, item := range items {
		v := extract(item)
		if v == nil {
			continue
		}
		if count == 0 || *v < minVal {
			minVal = *v
		}
		if count == 0 || *v > maxVal {
			maxVal = *v
		}
		count++
	}

	if count == 0 {
		return nil
	}

	lo, hi := minVal, maxVal
	return &domain.SearchFacet{
		Field: field,
		Label: label,
		Kind:  domain.FacetRange,
		Buckets: []domain.FacetBucket{
			{Min: &lo, Max: &hi, Count: count},
		},
	}
}
