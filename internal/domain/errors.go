package domain

import "errors"

var (
	// ErrNotFound indicates the record does not exist for the requesting
	// owner. Records owned by someone else report the same error.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a unique field (username, email) is already taken.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials indicates a failed login. Unknown username and
	// wrong password are reported identically.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized indicates a missing, malformed or expired token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation indicates missing or malformed input.
	ErrValidation = errors.New("invalid input")
)
