package memory

import (
	"context"
	"slices"

	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
)

// venueRepository implements repository.VenueRepository. Venues never change
// after construction, so no locking is needed.
type venueRepository struct {
	venues []entity.Venue
}

// NewVenueRepository creates an in-memory venue catalogue holding a copy of venues
func NewVenueRepository(venues []entity.Venue) repository.VenueRepository {
	return &venueRepository{venues: slices.Clone(venues)}
}

func (r *venueRepository) List(ctx context.Context) ([]entity.Venue, error) {
	return slices.Clone(r.venues), nil
}

func (r *venueRepository) FindByID(ctx context.Context, id string) (entity.Venue, error) {
	for _, v := range r.venues {
		if v.ID == id {
			return v, nil
		}
	}
	return entity.Venue{}, domain.ErrNotFound
}
