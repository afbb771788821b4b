package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is usually wrapped by a ValidationError naming the field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or out of range.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyContent is returned when required text content is blank.
	ErrEmptyContent = errors.New("content cannot be empty")
)

// ValidationError describes a single field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
// If err is nil the error unwraps to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel so errors.Is(err, ErrValidation) holds.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil || errors.Is(e.Err, ErrValidation) {
		return []error{ErrValidation}
	}
	return []error{e.Err, ErrValidation}
}
