package service

import (
	"errors"
	"testing"
	"time"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/entity"
)

func at(hour int) time.Time {
	return time.Date(2025, 6, 15, hour, 30, 0, 0, time.Local)
}

func TestResolveDetail_NotFound(t *testing.T) {
	if _, err := ResolveDetail(sampleCatalog(), 99, at(12)); !errors.Is(err, ErrBusinessNotFound) {
		t.Fatalf("expected ErrBusinessNotFound, got %v", err)
	}
}

func TestResolveDetail_Similar(t *testing.T) {
	catalog := []entity.Business{
		{ID: 1, Name: "Cafe A", Category: "food", Location: "Indiranagar", Rating: 4.5},
		{ID: 2, Name: "Cafe B", Category: "food", Location: "Koramangala", Rating: 4.8},
		{ID: 3, Name: "Gym C", Category: "fitness", Location: "Indiranagar", Rating: 3.0},
		{ID: 4, Name: "Cafe D", Category: "food", Location: "HSR", Rating: 4.1},
		{ID: 5, Name: "Cafe E", Category: "food", Location: "BTM", Rating: 4.7},
	}

	result, err := ResolveDetail(catalog, 1, at(12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Similar) != 3 {
		t.Fatalf("expected similar capped at 3, got %d", len(result.Similar))
	}
	if !equalIDs(ids(result.Similar), []int{2, 5, 4}) {
		t.Fatalf("expected similar sorted by rating desc, got %v", ids(result.Similar))
	}
	for _, b := range result.Similar {
		if b.ID == 1 {
			t.Fatalf("similar list contains the target itself")
		}
		if b.Category != "food" {
			t.Fatalf("similar list crossed categories: %+v", b)
		}
	}
}

func TestResolveDetail_SimilarFewerThanThree(t *testing.T) {
	result, err := ResolveDetail(sampleCatalog(), 1, at(12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(ids(result.Similar), []int{2}) {
		t.Fatalf("expected only Cafe B, got %v", ids(result.Similar))
	}
}

func TestResolveDetail_HoursFallback(t *testing.T) {
	catalog := []entity.Business{
		{ID: 1, Name: "Cafe A", Category: "food", Location: "Indiranagar", Rating: 4.5},
		{ID: 2, Name: "Cafe B", Category: "food", Location: "Koramangala", Rating: 4.8, Hours: "Tue-Sun: 8:00 AM - 11:00 PM"},
	}

	withFallback, err := ResolveDetail(catalog, 1, at(12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withFallback.Business.Hours != DefaultHours {
		t.Fatalf("expected fallback hours, got %q", withFallback.Business.Hours)
	}

	withOwn, err := ResolveDetail(catalog, 2, at(12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withOwn.Business.Hours != "Tue-Sun: 8:00 AM - 11:00 PM" {
		t.Fatalf("expected original hours kept, got %q", withOwn.Business.Hours)
	}
}

func TestResolveDetail_OpenWindow(t *testing.T) {
	cases := []struct {
		hour int
		open bool
	}{
		{8, false},
		{9, true},
		{12, true},
		{20, true},
		{21, false},
		{23, false},
		{0, false},
	}

	for _, tc := range cases {
		result, err := ResolveDetail(sampleCatalog(), 1, at(tc.hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsOpen != tc.open {
			t.Fatalf("hour %d: expected open=%v", tc.hour, tc.open)
		}
		if result.ClosesAt != "9:00 PM" {
			t.Fatalf("expected literal closing time, got %q", result.ClosesAt)
		}
	}
}
