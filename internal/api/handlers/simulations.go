package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"voyage-simulator/internal/api/dto"
	"voyage-simulator/internal/platform/obs"
	"voyage-simulator/internal/ports"
	"voyage-simulator/internal/services"

	"github.com/rs/zerolog"
)

type SimulationHandler struct {
	Repo            ports.ScenarioRepository
	Store           ports.RunStore
	Log             zerolog.Logger
	DefaultMaxHours int
}

// Run builds the stored scenario, drives it to completion and saves the outcome.
// An empty body runs with the default hour limit.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req dto.SimulationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, h.Log, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	// DefaultMaxHours <= 0 means no limit, as in Simulation.Run; an explicit
	// max_hours in the body must be positive.
	maxHours := h.DefaultMaxHours
	if req.MaxHours != nil {
		if *req.MaxHours < 1 {
			writeError(w, r, h.Log, http.StatusBadRequest, "max_hours must be positive")
			return
		}
		maxHours = *req.MaxHours
	}

	var err error
	done := obs.Time(r.Context(), h.Log, "run scenario")
	defer func() { done(&err) }()

	run, err := services.RunScenario(r.Context(), services.RunScenarioRequest{MaxHours: maxHours}, h.Repo, h.Store, h.Log)
	if errors.Is(err, services.ErrHourLimit) {
		writeError(w, r, h.Log, http.StatusUnprocessableEntity, "scenario did not finish within max_hours")
		return
	}
	if err != nil {
		writeServiceError(w, r, h.Log, "run scenario", err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusCreated, dto.NewRunResponse(*run))
}
