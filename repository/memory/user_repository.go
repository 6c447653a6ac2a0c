package memory

import (
	"context"
	"sync"

	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
)

type userRepository struct {
	mu      sync.RWMutex
	byEmail map[string]entity.User
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() repository.UserRepository {
	return &userRepository{byEmail: make(map[string]entity.User)}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return entity.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrConflict
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *userRepository) Update(ctx context.Context, user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; !exists {
		return domain.ErrUserNotFound
	}
	r.byEmail[user.Email] = user
	return nil
}
