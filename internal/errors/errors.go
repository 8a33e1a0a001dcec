// Package errors provides the error taxonomy for the blueprint CLI.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the path the error refers to (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(e.Location)
	}

	if e.Hint != "" {
		b.WriteString("\n  Hint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewAlreadyExistsError creates an already-exists error with details.
func NewAlreadyExistsError(message, location, hint string) error {
	return &DetailError{
		Type:     "already exists",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrAlreadyExists,
	}
}

// NewSourceNotFoundError creates a missing-source error with details.
func NewSourceNotFoundError(message, location string) error {
	return &DetailError{
		Type:     "source not found",
		Message:  message,
		Location: location,
		Cause:    ErrSourceNotFound,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// WriteFailed wraps a filesystem error with ErrWriteFailed, keeping the cause reachable.
func WriteFailed(op, path string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, path, ErrWriteFailed, err)
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
