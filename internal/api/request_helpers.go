package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/socialmedia-api/internal/api/shared"
	"github.com/phrazzld/socialmedia-api/internal/domain"
)

// getPathID extracts a positive integer id from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed id if valid
//   - (0, error): A ValidationError wrapping domain.ErrInvalidID otherwise
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathID extracts a path id and writes a 400 response if it is invalid.
// The boolean reports whether the handler may continue.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string, log *slog.Logger) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		log.Debug("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// parseAndValidateRequest decodes the JSON body into v and validates it,
// writing a 400 response on failure.
func parseAndValidateRequest(w http.ResponseWriter, r *http.Request, v interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidBody, err)
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		log.Debug("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}

	return true
}
