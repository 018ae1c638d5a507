// Package respond provides utilities for sending HTTP responses in JSON
// format. Error responses share one envelope: {"status": "error",
// "description": <string or violation list>}. Internal failures are logged
// and never leaked to clients.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the envelope of every error response.
type ErrorBody struct {
	Status      string `json:"status"`
	Description any    `json:"description"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers already sent, so the failure can only be logged
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes an error envelope with the given status code. description is
// either a plain string or a structured violation list.
func Error(w http.ResponseWriter, code int, description any) {
	JSON(w, code, ErrorBody{Status: "error", Description: description})
}

// Internal logs the error and writes a generic 500 envelope. Store errors and
// other server-side failures must go through here so their details stay out
// of response bodies.
func Internal(w http.ResponseWriter, err error) {
	slog.Default().Error("internal server error",
		slog.Int("code", http.StatusInternalServerError),
		slog.Any("error", err))
	Error(w, http.StatusInternalServerError, "internal server error")
}
