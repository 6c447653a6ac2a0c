package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
)

const venueColumns = `id, name, location, price_range, capacity, description,
	amenities, image_url, rating, contact_number, email`

type venueRepository struct {
	db *pgxpool.Pool
}

// NewVenueRepository creates a new PostgreSQL venue repository
func NewVenueRepository(db *pgxpool.Pool) repository.VenueRepository {
	return &venueRepository{db: db}
}

func scanVenue(row pgx.Row) (entity.Venue, error) {
	var v entity.Venue
	err := row.Scan(
		&v.ID, &v.Name, &v.Location, &v.PriceRange, &v.Capacity, &v.Description,
		&v.Amenities, &v.ImageURL, &v.Rating, &v.ContactNumber, &v.Email,
	)
	return v, err
}

func (r *venueRepository) List(ctx context.Context) ([]entity.Venue, error) {
	rows, err := r.db.Query(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := []entity.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (r *venueRepository) FindByID(ctx context.Context, id string) (entity.Venue, error) {
	v, err := scanVenue(r.db.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Venue{}, domain.ErrNotFound
	}
	return v, err
}
