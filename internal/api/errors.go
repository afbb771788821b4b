package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/socialmedia-api/internal/api/shared"
	"github.com/phrazzld/socialmedia-api/internal/domain"
	"github.com/phrazzld/socialmedia-api/internal/store"
)

// Client-facing messages. Raw error text never leaves the process.
const (
	msgUserNotFound    = "Could not find user"
	msgPostNotFound    = "Post not found"
	msgCommentNotFound = "Comment not found"
	msgEmailExists     = "Email is already registered"
	msgInvalidEntity   = "Invalid entity data"
	msgInvalidID       = "Invalid ID"
	msgInvalidBody     = "Invalid request format"
	msgValidation      = "Validation error"
	msgUnexpected      = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrPostNotFound),
		errors.Is(err, store.ErrCommentNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.As(err, &verrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	var verrs validator.ValidationErrors
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return msgUserNotFound
	case errors.Is(err, store.ErrPostNotFound):
		return msgPostNotFound
	case errors.Is(err, store.ErrCommentNotFound):
		return msgCommentNotFound
	case errors.Is(err, store.ErrEmailExists):
		return msgEmailExists
	case errors.As(err, &verrs), errors.As(err, &verr):
		return SanitizeValidationError(err)
	case errors.Is(err, domain.ErrInvalidID):
		return msgInvalidID
	case errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidEntity
	case errors.Is(err, domain.ErrValidation):
		return msgValidation
	default:
		return msgUnexpected
	}
}

// SanitizeValidationError renders the first failing field of a validation
// error as "Invalid <field>: <reason>".
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("Invalid %s: %s", verrs[0].Field(), getValidationTagMessage(verrs[0].Tag()))
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("Invalid %s: %s", verr.Field, verr.Message)
	}

	return msgValidation
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// full error. defaultMsg replaces the generic message on 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
