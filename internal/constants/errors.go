package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIConfigured  = errors.New("no API endpoint configured, use 'officectl config set api <url>' or --api")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrNotLoggedIn      = errors.New("not logged in, use 'officectl auth login' first")
)

// Validation errors.
var (
	ErrIDRequired       = errors.New("id is required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptyPassword    = errors.New("password must not be empty")
)
