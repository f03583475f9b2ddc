// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"demobank/internal/util"
)

// DefaultTimeout bounds request handling across the router.
const DefaultTimeout = 60 * time.Second

// respondWithJSON sends a JSON response with the given status code.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors to HTTP status codes and a stable
// error message body.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = "Invalid transfer data"
	case util.IsError(err, util.ErrSourceUnauthorized):
		statusCode = http.StatusBadRequest
		message = "From account not found or not owned by user"
	case util.IsError(err, util.ErrDestinationNotFound):
		statusCode = http.StatusBadRequest
		message = "To account not found"
	case util.IsError(err, util.ErrInsufficientFunds):
		statusCode = http.StatusBadRequest
		message = "Insufficient funds"
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = "Invalid credentials"
	case util.IsError(err, util.ErrUnauthenticated):
		statusCode = http.StatusUnauthorized
		message = "Unauthorized"
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, map[string]string{"error": message})
}
