package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"heavylingam-backend/internal/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError converts a backend error into the single user-visible message
// the UI shows. Errors are not logged here and never retried; the service
// layer already logged what it wanted to.
func writeError(w http.ResponseWriter, err error, prefix string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrAuth):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrListingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConnection):
		status = http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrWrite):
		status = http.StatusBadGateway
	}

	msg := err.Error()
	if prefix != "" {
		msg = prefix + ": " + msg
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
