package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"voyage-simulator/internal/domain"

	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, r *http.Request, log zerolog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, status int, msg string) {
	writeJSON(w, r, log, status, map[string]string{"error": msg})
}

// Map a service error onto a response: bad input is the caller's fault,
// a missing scenario is 404, anything else is logged and hidden.
func writeServiceError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, r, log, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, log, http.StatusNotFound, "scenario not found")
	default:
		log.Error().Err(err).Str("op", op).Msg("request failed")
		writeError(w, r, log, http.StatusInternalServerError, "internal server error")
	}
}
