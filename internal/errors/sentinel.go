package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrNotFound indicates a blueprint or location does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a creation target is already occupied.
	ErrAlreadyExists = errors.New("already exists")

	// ErrSourceNotFound indicates the blueprint root is missing at instantiation time.
	ErrSourceNotFound = errors.New("source not found")

	// ErrWriteFailed indicates an underlying filesystem operation failed.
	ErrWriteFailed = errors.New("write failed")

	// ErrValidation indicates invalid user input (names, flags).
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")
)
