package api

import (
	"net/http"
	"voyage-simulator/internal/api/handlers"
	"voyage-simulator/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ScenarioRepository, store ports.RunStore, log zerolog.Logger, maxHours int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware(log))
	r.Use(middleware.Recoverer)

	healthHandler := &handlers.HealthHandler{Log: log}
	scenarioHandler := &handlers.ScenarioHandler{Repo: repo, Log: log}
	simHandler := &handlers.SimulationHandler{
		Repo:            repo,
		Store:           store,
		Log:             log,
		DefaultMaxHours: maxHours,
	}
	runHandler := &handlers.RunHandler{Store: store, Log: log}

	r.Get("/health", healthHandler.Get)
	r.Get("/scenario", scenarioHandler.Get)
	r.Post("/simulations", simHandler.Run)
	r.Get("/runs", runHandler.List)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
