package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/socialmedia-api/internal/api/shared"
	"github.com/phrazzld/socialmedia-api/internal/domain"
	"github.com/phrazzld/socialmedia-api/internal/platform/logger"
	"github.com/phrazzld/socialmedia-api/internal/service"
	"github.com/phrazzld/socialmedia-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"nil error", nil, http.StatusInternalServerError},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped user not found", fmt.Errorf("failed to get user: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"post not found", store.ErrPostNotFound, http.StatusNotFound},
		{"comment not found", store.ErrCommentNotFound, http.StatusNotFound},
		{"email exists", fmt.Errorf("failed to create user: %w", store.ErrEmailExists), http.StatusConflict},
		{"domain validation", domain.NewValidationError("name", "too short", domain.ErrValidation), http.StatusBadRequest},
		{"invalid id", domain.NewValidationError("userId", "bad", domain.ErrInvalidID), http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"request validation", shared.ValidateRequest(&service.UserInput{}), http.StatusBadRequest},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
		{
			"service error wrapping store failure",
			service.NewUserServiceError("create_user", "failed to create user", errors.New("disk full")),
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"user not found", fmt.Errorf("x: %w", store.ErrUserNotFound), "Could not find user"},
		{"post not found", fmt.Errorf("x: %w", store.ErrPostNotFound), "Post not found"},
		{"comment not found", store.ErrCommentNotFound, "Comment not found"},
		{"store failure", store.NewStoreError("user", "list", "database error", errors.New("timeout")),
			"An unexpected error occurred"},
		{"email exists", store.ErrEmailExists, "Email is already registered"},
		{"domain validation", domain.NewValidationError("name", "must have at least 3 characters", domain.ErrValidation),
			"Invalid name: must have at least 3 characters"},
		{"request validation", shared.ValidateRequest(&service.UserInput{Name: "Alice", Email: "nope"}),
			"Invalid email: invalid email format"},
		{"invalid entity", store.ErrInvalidEntity, "Invalid entity data"},
		{"internal error", errors.New("pq: relation users does not exist"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Run("first failing field wins", func(t *testing.T) {
		err := shared.ValidateRequest(&service.UserInput{Name: "Al", Email: ""})
		assert.Equal(t, "Invalid name: too short", SanitizeValidationError(err))
	})

	t.Run("required", func(t *testing.T) {
		err := shared.ValidateRequest(&service.PostInput{Title: "t"})
		assert.Equal(t, "Invalid content: required field", SanitizeValidationError(err))
	})

	t.Run("unknown error", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		defaultMsg    string
		expectedCode  int
		expectedError string
	}{
		{"not found ignores default", store.ErrUserNotFound, "Failed to get user", http.StatusNotFound, "Could not find user"},
		{"internal uses default", errors.New("boom"), "Failed to get user", http.StatusInternalServerError, "Failed to get user"},
		{"internal without default", errors.New("boom"), "", http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(w, r, tt.err, tt.defaultMsg)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedError)
		})
	}
}

func TestHandleAPIError_DoesNotLeakDetails(t *testing.T) {
	log, buf := logger.NewTestLogger(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/social-media/users", nil)
	r = r.WithContext(logger.WithLogger(r.Context(), log))

	err := fmt.Errorf("failed to create user: %w",
		errors.New("insert into users failed for bob@example.com via postgres://app:hunter2@db:5432/social"))
	HandleAPIError(w, r, err, "")

	body := w.Body.String()
	for _, secret := range []string{"bob@example.com", "hunter2", "insert into users"} {
		assert.NotContains(t, body, secret)
		assert.NotContains(t, buf.String(), secret)
	}

	entries := buf.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.True(t, strings.HasPrefix(entries[0]["error"].(string), "failed to create user"))
}
