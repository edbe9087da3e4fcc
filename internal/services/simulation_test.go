package services

import (
	"context"
	"errors"
	"testing"
	"voyage-simulator/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleVoyageSeed(lifetimeHours int) domain.ScenarioSeed {
	return domain.ScenarioSeed{
		Locations: []domain.LocationSeed{
			{Name: "Earth", HoursPerDay: 24},
			{Name: "Mars", HoursPerDay: 24},
		},
		Vehicles: []domain.VehicleSeed{
			{Name: "Ares", Origin: "Earth", Destination: "Mars", DepartureDay: 0, DepartureHour: 10, TransitHours: 5},
		},
		People: []domain.PersonSeed{
			{Name: "Ada", Age: 30, LifetimeHours: lifetimeHours, Vehicle: "Ares"},
		},
	}
}

func newSim(t *testing.T, seed domain.ScenarioSeed) *Simulation {
	t.Helper()
	sc, err := BuildScenario(seed)
	require.NoError(t, err)
	sim, err := NewSimulation(sc, zerolog.Nop())
	require.NoError(t, err)
	return sim
}

func TestSimulationNormalCompletion(t *testing.T) {
	sim := newSim(t, singleVoyageSeed(1000))

	require.NoError(t, sim.Run(context.Background(), 0))

	v := sim.Scenario().Vehicles[0]
	assert.Equal(t, domain.StateArrived, v.State())
	assert.Equal(t, 0, v.RemainingHours())
	assert.Equal(t, 15, sim.Hour())

	mars := sim.Scenario().Locations[1]
	assert.Equal(t, mars.Now(), v.TargetArrival())
	assert.Equal(t, domain.Time{Day: 0, Hour: 15}, v.TargetArrival())
}

func TestSimulationDestroyedInFlight(t *testing.T) {
	// departs during hour 10, dies at the end of hour 11
	sim := newSim(t, singleVoyageSeed(12))

	require.NoError(t, sim.Run(context.Background(), 0))

	v := sim.Scenario().Vehicles[0]
	assert.Equal(t, domain.StateDestroyed, v.State())
	assert.Equal(t, 3, v.RemainingHours())
	assert.Equal(t, 12, sim.Hour())

	sim.Step()
	sim.Step()
	assert.Equal(t, domain.StateDestroyed, v.State())
	assert.Equal(t, 3, v.RemainingHours())
}

func TestSimulationDestroyedWhileWaiting(t *testing.T) {
	sim := newSim(t, singleVoyageSeed(5))

	var states []domain.State
	v := sim.Scenario().Vehicles[0]
	for !sim.Done() {
		sim.Step()
		states = append(states, v.State())
	}

	assert.Equal(t, domain.StateDestroyed, v.State())
	assert.NotContains(t, states, domain.StateEnRoute)
	assert.Equal(t, 5, sim.Hour())
}

func TestSimulationDifferingDayLengths(t *testing.T) {
	seed := domain.ScenarioSeed{
		Locations: []domain.LocationSeed{
			{Name: "Origin", HoursPerDay: 20},
			{Name: "Destination", HoursPerDay: 30},
		},
		Vehicles: []domain.VehicleSeed{
			{Name: "Drift", Origin: "Origin", Destination: "Destination", DepartureDay: 2, TransitHours: 10},
		},
		People: []domain.PersonSeed{{Name: "Ada", LifetimeHours: 500, Vehicle: "Drift"}},
	}
	sim := newSim(t, seed)

	require.NoError(t, sim.Run(context.Background(), 0))

	v := sim.Scenario().Vehicles[0]
	assert.Equal(t, domain.StateArrived, v.State())
	assert.Equal(t, domain.Time{Day: 1, Hour: 20}, v.TargetArrival())
	assert.Equal(t, v.TargetArrival(), v.Destination().Now())
}

func TestSimulationHourLimit(t *testing.T) {
	sim := newSim(t, singleVoyageSeed(1000))

	err := sim.Run(context.Background(), 3)

	assert.ErrorIs(t, err, ErrHourLimit)
	assert.Equal(t, 3, sim.Hour())
}

func TestSimulationContextCancelled(t *testing.T) {
	sim := newSim(t, singleVoyageSeed(1000))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sim.Run(ctx, 0)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, sim.Hour())
}

func TestNewSimulationNilScenario(t *testing.T) {
	_, err := NewSimulation(nil, zerolog.Nop())
	assert.Error(t, err)
}
