package services

import (
	"context"
	"fmt"
	"time"
	"voyage-simulator/internal/domain"
	"voyage-simulator/internal/platform/metrics"
	"voyage-simulator/internal/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type RunScenarioRequest struct {
	MaxHours int
}

// Load the stored scenario, drive it to completion and persist the outcome.
func RunScenario(
	ctx context.Context,
	req RunScenarioRequest,
	repo ports.ScenarioRepository,
	store ports.RunStore,
	log zerolog.Logger,
) (*domain.RunSummary, error) {
	seed, err := repo.LoadScenario(ctx)
	if err != nil {
		return nil, fmt.Errorf("run scenario: load scenario: %w", err)
	}

	summary, err := Simulate(ctx, seed, req.MaxHours, log)
	if err != nil {
		return nil, fmt.Errorf("run scenario: %w", err)
	}

	if err := store.SaveRun(ctx, *summary); err != nil {
		return nil, fmt.Errorf("run scenario: save run %s: %w", summary.ID, err)
	}

	return summary, nil
}

// Build a scenario from seed and run it to completion without persisting anything.
func Simulate(ctx context.Context, seed domain.ScenarioSeed, maxHours int, log zerolog.Logger) (*domain.RunSummary, error) {
	sc, err := BuildScenario(seed)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	id := uuid.New()
	log = log.With().Str("run_id", id.String()).Logger()

	sim, err := NewSimulation(sc, log)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	started := time.Now().UTC()
	if err := sim.Run(ctx, maxHours); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	metrics.RunDuration.Observe(time.Since(started).Seconds())

	summary := &domain.RunSummary{
		ID:        id,
		StartedAt: started,
		Hours:     sim.Hour(),
		Report:    Snapshot(sim),
	}
	for _, v := range sc.Vehicles {
		switch v.State() {
		case domain.StateArrived:
			summary.Arrived++
		case domain.StateDestroyed:
			summary.Destroyed++
		}
	}

	return summary, nil
}
