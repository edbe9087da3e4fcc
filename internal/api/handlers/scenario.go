package handlers

import (
	"net/http"
	"voyage-simulator/internal/api/dto"
	"voyage-simulator/internal/ports"

	"github.com/rs/zerolog"
)

// ScenarioHandler exposes the stored scenario read-only.
type ScenarioHandler struct {
	Repo ports.ScenarioRepository
	Log  zerolog.Logger
}

func (h *ScenarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	seed, err := h.Repo.LoadScenario(r.Context())
	if err != nil {
		writeServiceError(w, r, h.Log, "load scenario", err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.ScenarioResponse{
		Locations: seed.Locations,
		Vehicles:  seed.Vehicles,
		People:    seed.People,
	})
}
