package shared

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name  string `json:"name"  validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     error
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"name": "Alice", "email": "alice@example.com"}`,
		},
		{
			name:        "invalid json",
			requestBody: `{"name": "Alice",}`,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     ErrEmptyBody,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))

			var target signupRequest
			err := DecodeJSON(req, &target)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Alice", target.Name)
				assert.Equal(t, "alice@example.com", target.Email)
			}
		})
	}
}

type errorReader struct{}

func (er errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSONWithReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", errorReader{})

	var target signupRequest
	err := DecodeJSON(req, &target)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyBody))
	assert.Contains(t, err.Error(), "unexpected EOF")
}

type selfValidating struct {
	Name string
}

func (v *selfValidating) Validate() error {
	if v.Name == "invalid" {
		return errors.New("name is invalid")
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{}
		wantErr bool
	}{
		{"self validating ok", &selfValidating{Name: "test"}, false},
		{"self validating fails", &selfValidating{Name: "invalid"}, true},
		{"tags ok", &signupRequest{Name: "Alice", Email: "alice@example.com"}, false},
		{"name too short", &signupRequest{Name: "Al", Email: "alice@example.com"}, true},
		{"bad email", &signupRequest{Name: "Alice", Email: "alice"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequest_ReturnsValidationErrors(t *testing.T) {
	err := ValidateRequest(&signupRequest{Name: "", Email: "bad"})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
	assert.Equal(t, "name", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())
}
