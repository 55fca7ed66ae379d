package service

import (
	"errors"
	"sort"
	"time"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/entity"
)

// ErrBusinessNotFound is returned when no catalog entry matches the id.
var ErrBusinessNotFound = errors.New("business not found")

// DefaultHours is substituted when a listing carries no schedule text.
const DefaultHours = "Monday-Sunday: 9:00 AM - 9:00 PM"

const maxSimilar = 3

// DetailResult is the resolved view of one business: the record with
// normalized hours, up to three same-category recommendations and the
// open/closed status derived from the current time.
type DetailResult struct {
	Business entity.Business   `json:"business"`
	Similar  []entity.Business `json:"similar_businesses"`
	IsOpen   bool              `json:"is_open"`
	ClosesAt string            `json:"closes_at"`
}

// ResolveDetail looks up a business by id and derives its detail view.
// The similar list shares the target's category, never contains the
// target, is stable-sorted descending by rating and capped at three.
func ResolveDetail(businesses []entity.Business, id int, now time.Time) (*DetailResult, error) {
	var target *entity.Business
	for i := range businesses {
		if businesses[i].ID == id {
			target = &businesses[i]
			break
		}
	}
	if target == nil {
		return nil, ErrBusinessNotFound
	}

	business := *target
	if business.Hours == "" {
		business.Hours = DefaultHours
	}

	similar := make([]entity.Business, 0, maxSimilar)
	for _, b := range businesses {
		if b.Category == business.Category && b.ID != business.ID {
			similar = append(similar, b)
		}
	}
	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Rating > similar[j].Rating
	})
	if len(similar) > maxSimilar {
		similar = similar[:maxSimilar]
	}

	isOpen, closesAt := openStatus(now)

	return &DetailResult{
		Business: business,
		Similar:  similar,
		IsOpen:   isOpen,
		ClosesAt: closesAt,
	}, nil
}

// openStatus approximates the open/closed state with a fixed 9 AM - 9 PM
// window and a literal closing time. The schedule text is deliberately not
// parsed; a real parser would change the behavior the frontend was built
// against.
func openStatus(now time.Time) (bool, string) {
	hour := now.Hour()
	return hour >= 9 && hour < 21, "9:00 PM"
}
