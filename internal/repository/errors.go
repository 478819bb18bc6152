package repository

import "errors"

var (
	// ErrDuplicateUsername is returned when signup reuses a username.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNotFound is returned for lookups of non-existent records.
	ErrNotFound = errors.New("record not found")
)
