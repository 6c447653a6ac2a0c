package domain

import "errors"

var (
	// ErrInternalServerError is thrown when an internal server error occurs
	ErrInternalServerError = errors.New("internal server error")

	// ErrNotFound is thrown when a requested resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is thrown when a resource already exists (duplicate registration)
	ErrConflict = errors.New("resource already exists")

	// ErrBadParamInput is thrown when request parameters are invalid
	ErrBadParamInput = errors.New("invalid parameters")

	// ErrUserNotFound is thrown when logging in with an unregistered email
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is thrown when a session token is unknown or revoked
	ErrSessionNotFound = errors.New("session not found")
)
