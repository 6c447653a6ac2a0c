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

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new MySQL user repository
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (entity.User, error) {
	var u entity.User
	err := r.db.GetContext(ctx, &u,
		`SELECT id, email, phone_number, name, logged_in FROM users WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, domain.ErrUserNotFound
	}
	return u, err
}

func (r *userRepository) Create(ctx context.Context, user entity.User) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (id, email, phone_number, name, logged_in)
		VALUES (:id, :email, :phone_number, :name, :logged_in)
	`, user)
	if isMySQLError(err, errDuplicateEntry) {
		return domain.ErrConflict
	}
	return err
}

func (r *userRepository) Update(ctx context.Context, user entity.User) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE users SET phone_number = :phone_number, name = :name, logged_in = :logged_in
		WHERE email = :email
	`, user)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
