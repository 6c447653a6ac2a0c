// Package auth implements the email-only account flow: register, log in,
// log out and look up the current user by session token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
)

// Session binds an opaque token to a logged-in user
type Session struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

type registration struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
	Phone string `validate:"omitempty,min=10,number"`
}

type login struct {
	Email string `validate:"required,email"`
}

// Service handles account registration and sessions
type Service struct {
	users    repository.UserRepository
	validate *validator.Validate
	logger   *zap.Logger

	mu       sync.RWMutex
	sessions map[string]string // token -> email
}

// NewService creates a new auth service
func NewService(users repository.UserRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:    users,
		validate: validator.New(),
		logger:   logger,
		sessions: make(map[string]string),
	}
}

// Register creates an account and logs it in. A second registration with the
// same email fails with domain.ErrConflict.
func (s *Service) Register(ctx context.Context, email, phoneNumber, name string) (Session, error) {
	in := registration{
		Email: strings.TrimSpace(email),
		Name:  strings.TrimSpace(name),
		Phone: strings.TrimSpace(phoneNumber),
	}
	if err := s.validate.Struct(in); err != nil {
		return Session{}, validationError(err)
	}

	user := entity.NewUser(in.Email, in.Phone, in.Name)
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return Session{}, domain.ErrConflict
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID))
	return s.open(user), nil
}

// Login opens a session for a registered email
func (s *Service) Login(ctx context.Context, email string) (Session, error) {
	in := login{Email: strings.TrimSpace(email)}
	if err := s.validate.Struct(in); err != nil {
		return Session{}, validationError(err)
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return Session{}, domain.ErrUserNotFound
		}
		return Session{}, fmt.Errorf("find user: %w", err)
	}

	user.LoggedIn = true
	if err := s.users.Update(ctx, user); err != nil {
		return Session{}, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID))
	return s.open(user), nil
}

// Logout revokes the session and marks its user logged out
func (s *Service) Logout(ctx context.Context, token string) error {
	s.mu.Lock()
	email, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	user.LoggedIn = false
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	s.logger.Info("User logged out", zap.String("user_id", user.ID))
	return nil
}

// Current returns the user owning token
func (s *Service) Current(ctx context.Context, token string) (entity.User, error) {
	s.mu.RLock()
	email, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return entity.User{}, domain.ErrSessionNotFound
	}
	return s.users.FindByEmail(ctx, email)
}

func (s *Service) open(user entity.User) Session {
	token := uuid.New().String()

	s.mu.Lock()
	s.sessions[token] = user.Email
	s.mu.Unlock()

	return Session{Token: token, User: user}
}

// validationError converts validator output into a domain.ErrBadParamInput
// carrying the first failing field's message.
func validationError(err error) error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) || len(valErrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}

	fe := valErrs[0]
	var msg string
	switch {
	case fe.Tag() == "required":
		msg = "email and name are required"
	case fe.Field() == "Email":
		msg = "please enter a valid email address"
	case fe.Field() == "Phone":
		msg = "please enter a valid phone number"
	default:
		msg = fe.Error()
	}
	return fmt.Errorf("%w: %s", domain.ErrBadParamInput, msg)
}
