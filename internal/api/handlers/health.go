package handlers

import (
	"net/http"

	"github.com/rs/zerolog"
)

type HealthHandler struct {
	Log zerolog.Logger
}

// Get provides a minimal liveness check endpoint.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	res := map[string]string{"status": "ok"}
	writeJSON(w, r, h.Log, http.StatusOK, res)
}
