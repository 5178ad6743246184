package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnauthorized indicates the caller carries no valid identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput indicates a request failed validation before any write.
	ErrInvalidInput = errors.New("invalid input")
)
