package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique key is already taken in the store.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUserNameTaken is returned by signup when the userName is registered.
	ErrUserNameTaken = errors.New("username is already in use")
	// ErrInvalidCredentials is returned when userName/password do not match.
	ErrInvalidCredentials = errors.New("invalid username and/or password")
	// ErrValidation signals rejected input.
	ErrValidation = errors.New("validation failed")
)

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is reports ValidationError as ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
