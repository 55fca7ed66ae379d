package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/catalog"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/dto"
	"github.com/VPPranav/Bangalore-Local-Business-Finder/internal/entity"
)

// BusinessService exposes read operations over the business catalog. Every
// call loads a fresh snapshot from the source; nothing is cached between
// requests.
type BusinessService struct {
	source catalog.Source
	now    func() time.Time
}

// BusinessServiceOption configures optional dependencies.
type BusinessServiceOption func(*BusinessService)

// WithClock overrides the time source, used by the open-status check.
func WithClock(now func() time.Time) BusinessServiceOption {
	return func(s *BusinessService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewBusinessService creates a catalog-backed business service.
func NewBusinessService(source catalog.Source, opts ...BusinessServiceOption) *BusinessService {
	s := &BusinessService{source: source, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search loads the catalog and applies the filter and sort order. The sort
// key defaults to rating when unset.
func (s *BusinessService) Search(ctx context.Context, filter dto.SearchFilter) ([]entity.Business, error) {
	businesses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Sort == "" {
		filter.Sort = SortByRating
	}
	return SortBusinesses(FilterBusinesses(businesses, filter), filter.Sort), nil
}

// Detail resolves one business with its similar-businesses recommendation
// and live open status.
func (s *BusinessService) Detail(ctx context.Context, id int) (*DetailResult, error) {
	businesses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveDetail(businesses, id, s.now())
}

// Categories lists the distinct categories in the catalog, sorted.
func (s *BusinessService) Categories(ctx context.Context) ([]string, error) {
	businesses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(businesses), nil
}

// Locations lists the distinct locations in the catalog, sorted.
func (s *BusinessService) Locations(ctx context.Context) ([]string, error) {
	businesses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return Locations(businesses), nil
}

func (s *BusinessService) load(ctx context.Context) ([]entity.Business, error) {
	businesses, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return businesses, nil
}
