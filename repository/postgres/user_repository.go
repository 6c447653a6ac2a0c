package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
)

// uniqueViolation is the SQLSTATE for duplicate keys
const uniqueViolation = "23505"

type userRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *pgxpool.Pool) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, phone_number, name, logged_in FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.PhoneNumber, &u.Name, &u.LoggedIn)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.User{}, domain.ErrUserNotFound
	}
	return u, err
}

func (r *userRepository) Create(ctx context.Context, user entity.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, phone_number, name, logged_in) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PhoneNumber, user.Name, user.LoggedIn,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrConflict
	}
	return err
}

func (r *userRepository) Update(ctx context.Context, user entity.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET phone_number = $2, name = $3, logged_in = $4 WHERE email = $1`,
		user.Email, user.PhoneNumber, user.Name, user.LoggedIn,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
