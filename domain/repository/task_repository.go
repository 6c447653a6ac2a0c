package repository

import (
	"context"

	"weddingplanner/domain/entity"
)

// TaskRepository defines the interface for checklist task storage.
// List returns a snapshot; callers may filter and sort it freely.
type TaskRepository interface {
	List(ctx context.Context) ([]entity.Task, error)

	FindByID(ctx context.Context, id string) (entity.Task, error)

	// Upsert inserts the task or replaces the stored task with the same id
	Upsert(ctx context.Context, task entity.Task) error

	// Remove deletes the task; removing an unknown id is not an error
	Remove(ctx context.Context, id string) error
}

// VenueRepository defines the interface for the read-only venue catalogue
type VenueRepository interface {
	List(ctx context.Context) ([]entity.Venue, error)

	FindByID(ctx context.Context, id string) (entity.Venue, error)
}

// UserRepository defines the interface for account storage.
// Create returns domain.ErrConflict when the email is already registered.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (entity.User, error)

	Create(ctx context.Context, user entity.User) error

	Update(ctx context.Context, user entity.User) error
}
