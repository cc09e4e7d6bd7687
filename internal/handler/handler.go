package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"chroma-store/internal/model"

	"github.com/rs/zerolog"
)

// MessageResponse is the success envelope for write operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code. The
// status line is already sent by the time encoding can fail, so a
// failure is logged rather than surfaced to the client.
func writeJSON(w http.ResponseWriter, status int, data interface{}, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Int("status", status).Msg("failed to encode response")
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message}, logger)
}

// writeDomainError maps a service error to a status and message.
// Domain errors carry a precise, user-actionable message; anything else
// is a storage or upload failure and surfaces as the generic message to
// avoid leaking internals.
func writeDomainError(w http.ResponseWriter, err error, generic string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, generic, logger)
		return
	}

	writeError(w, statusForCode(domainErr.Code), domainErr.Message, logger)
}

// statusForCode maps a domain error code to an HTTP status.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeValidation, model.ErrCodeInvalidJSON, model.ErrCodeDuplicateEmail, model.ErrCodeMissingFile:
		return http.StatusBadRequest
	case model.ErrCodeProductNotFound:
		return http.StatusNotFound
	case model.ErrCodeAdminNotFound, model.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
