package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	// Callers must never be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUsernameTaken   = errors.New("username already taken")
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")

	// ErrStoreUnavailable wraps transient persistence failures (connectivity,
	// timeouts). It is surfaced to the caller, not silently retried.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrValidation is the sentinel behind every ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports a malformed username or password with a
// user-correctable reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError with the given reason.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}
