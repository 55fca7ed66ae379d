package service

import (
	"sort"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/entity"
)

// Categories returns the distinct category values present in the snapshot,
// ascending. Never nil.
func Categories(businesses []entity.Business) []string {
	return distinct(businesses, func(b entity.Business) string { return b.Category })
}

// Locations returns the distinct location values present in the snapshot,
// ascending. Never nil.
func Locations(businesses []entity.Business) []string {
	return distinct(businesses, func(b entity.Business) string { return b.Location })
}

func distinct(businesses []entity.Business, field func(entity.Business) string) []string {
	seen := make(map[string]struct{}, len(businesses))
	values := make([]string, 0, len(businesses))
	for _, b := range businesses {
		v := field(b)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
