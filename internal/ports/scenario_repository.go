package ports

import (
	"context"
	"voyage-simulator/internal/domain"
)

// Port: a boundary for retrieving the stored scenario a simulation is built from.
type ScenarioRepository interface {
	// Return every location, vehicle and person of the stored scenario.
	LoadScenario(ctx context.Context) (domain.ScenarioSeed, error)
}
