package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
)

const venueColumns = `id, name, location, price_range, capacity, description,
	amenities, image_url, rating, contact_number, email`

type venueRepository struct {
	db *sqlx.DB
}

// NewVenueRepository creates a new MySQL venue repository
func NewVenueRepository(db *sqlx.DB) repository.VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) List(ctx context.Context) ([]entity.Venue, error) {
	venues := []entity.Venue{}
	err := r.db.SelectContext(ctx, &venues, `SELECT `+venueColumns+` FROM venues ORDER BY position ASC`)
	return venues, err
}

func (r *venueRepository) FindByID(ctx context.Context, id string) (entity.Venue, error) {
	var v entity.Venue
	err := r.db.GetContext(ctx, &v, `SELECT `+venueColumns+` FROM venues WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Venue{}, domain.ErrNotFound
	}
	return v, err
}
