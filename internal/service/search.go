package service

import (
	"sort"
	"strings"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/dto"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/entity"
)

// CategoryAll is the sentinel category value meaning "no category filter".
const CategoryAll = "all"

// Sort keys accepted by SortBusinesses. Any other value leaves the input
// order untouched.
const (
	SortByRating  = "rating"
	SortByReviews = "reviews"
	SortByName    = "name"
)

// FilterBusinesses narrows a catalog snapshot with the given filter.
// Each set predicate must hold (logical AND); category matching is exact
// and case-sensitive while location and free-text matching are
// case-insensitive substring checks. The free-text query matches when it
// appears in the name, description or category.
func FilterBusinesses(businesses []entity.Business, filter dto.SearchFilter) []entity.Business {
	result := make([]entity.Business, 0, len(businesses))
	query := strings.ToLower(filter.Query)
	location := strings.ToLower(filter.Location)

	for _, b := range businesses {
		if filter.Category != "" && filter.Category != CategoryAll && b.Category != filter.Category {
			continue
		}
		if filter.MinRating != nil && b.Rating < *filter.MinRating {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(b.Location), location) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(b.Name), query) &&
			!strings.Contains(strings.ToLower(b.Description), query) &&
			!strings.Contains(strings.ToLower(b.Category), query) {
			continue
		}
		result = append(result, b)
	}

	return result
}

// SortBusinesses orders a result set in place and returns it. Rating and
// review sorts are descending, name is ascending. The sort is stable so
// records with equal keys keep their catalog order. Unknown keys are a
// permissive pass-through, not an error.
func SortBusinesses(businesses []entity.Business, key string) []entity.Business {
	switch key {
	case SortByRating:
		sort.SliceStable(businesses, func(i, j int) bool {
			return businesses[i].Rating > businesses[j].Rating
		})
	case SortByReviews:
		sort.SliceStable(businesses, func(i, j int) bool {
			return businesses[i].Reviews > businesses[j].Reviews
		})
	case SortByName:
		sort.SliceStable(businesses, func(i, j int) bool {
			return businesses[i].Name < businesses[j].Name
		})
	}
	return businesses
}
