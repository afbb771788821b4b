package service

import "fmt"

// UserServiceError wraps unexpected failures with the operation that hit them.
// Expected conditions (not found, conflict, validation) are returned as the
// store and domain sentinels wrapped with %w so callers can use errors.Is.
type UserServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for UserServiceError.
func (e *UserServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("user service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("user service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *UserServiceError) Unwrap() error {
	return e.Err
}

// NewUserServiceError creates a new UserServiceError.
func NewUserServiceError(operation, message string, err error) *UserServiceError {
	return &UserServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
