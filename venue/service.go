// Package venue implements browsing of the venue catalogue.
package venue

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
	"weddingplanner/filter"
)

// Service handles venue lookups and searches
type Service struct {
	repo   repository.VenueRepository
	logger *zap.Logger
}

// NewService creates a new venue service
func NewService(repo repository.VenueRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Browse loads the catalogue and reduces the criteria over it
func (s *Service) Browse(ctx context.Context, c filter.VenueCriteria) (State, error) {
	venues, err := s.repo.List(ctx)
	if err != nil {
		return State{}, fmt.Errorf("list venues: %w", err)
	}

	if c.Region == "" {
		c.Region = filter.All
	}

	st := Reduce(NewState(), Loaded{Venues: venues})
	st = Reduce(st, QueryChanged{Query: c.Query})
	st = Reduce(st, RegionSelected{Region: c.Region})
	st = Reduce(st, BudgetChanged{Min: c.Budget.Min, Max: c.Budget.Max})
	st = Reduce(st, CapacityChanged{Min: c.Capacity.Min, Max: c.Capacity.Max})

	s.logger.Debug("Venues browsed",
		zap.String("query", c.Query),
		zap.String("region", c.Region),
		zap.Int("results", st.ResultCount()),
	)
	return st, nil
}

// Regions returns the region facet of the full catalogue
func (s *Service) Regions(ctx context.Context) ([]string, error) {
	venues, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return filter.Regions(venues), nil
}

// Get retrieves a venue by ID
func (s *Service) Get(ctx context.Context, id string) (entity.Venue, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return entity.Venue{}, domain.ErrNotFound
		}
		return entity.Venue{}, fmt.Errorf("find venue %s: %w", id, err)
	}
	return v, nil
}
