package handlers

import (
	"net/http"
	"voyage-simulator/internal/api/dto"
	"voyage-simulator/internal/ports"

	"github.com/rs/zerolog"
)

// RunHandler exposes the history of completed runs.
type RunHandler struct {
	Store ports.RunStore
	Log   zerolog.Logger
}

func (h *RunHandler) List(w http.ResponseWriter, r *http.Request) {
	runs, err := h.Store.ListRuns(r.Context())
	if err != nil {
		writeServiceError(w, r, h.Log, "list runs", err)
		return
	}

	res := dto.ListRunsResponse{Runs: make([]dto.RunResponse, 0, len(runs))}
	for _, run := range runs {
		res.Runs = append(res.Runs, dto.NewRunResponse(run))
	}

	writeJSON(w, r, h.Log, http.StatusOK, res)
}
