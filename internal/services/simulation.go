package services

import (
	"context"
	"errors"
	"fmt"
	"voyage-simulator/internal/domain"
	"voyage-simulator/internal/platform/metrics"

	"github.com/rs/zerolog"
)

// Returned by Run when the hour limit is reached before every vehicle has finished.
var ErrHourLimit = errors.New("hour limit reached")

// Hour-by-hour driver for a scenario.
//
// Each Step is one simulated hour: due vehicles depart, en-route vehicles
// advance, everyone ages, dead occupants are removed, then every location's
// clock moves on. A Simulation is single-threaded like the vehicles it drives.
type Simulation struct {
	scenario *domain.Scenario
	hour     int
	log      zerolog.Logger
}

func NewSimulation(sc *domain.Scenario, log zerolog.Logger) (*Simulation, error) {
	if sc == nil {
		return nil, errors.New("new simulation: scenario must be non-nil")
	}

	s := &Simulation{scenario: sc, log: log}
	for _, v := range sc.Vehicles {
		v.OnTransition(s.recordTransition)
	}

	return s, nil
}

// Simulated hours stepped so far.
func (s *Simulation) Hour() int { return s.hour }

func (s *Simulation) Scenario() *domain.Scenario { return s.scenario }

// Report whether every vehicle has reached a terminal state.
func (s *Simulation) Done() bool {
	for _, v := range s.scenario.Vehicles {
		if !v.State().Terminal() {
			return false
		}
	}
	return true
}

// Advance the whole scenario by one hour.
func (s *Simulation) Step() {
	for _, v := range s.scenario.Vehicles {
		if v.HasDepartureArrived() {
			v.Depart()
		}
	}

	for _, v := range s.scenario.Vehicles {
		v.AdvanceOneHour()
	}

	for _, p := range s.scenario.People {
		p.Live()
	}

	for _, v := range s.scenario.Vehicles {
		v.ReconcileDeaths()
	}

	for _, l := range s.scenario.Locations {
		l.Tick()
	}

	s.hour++
	metrics.HoursSimulated.Inc()
}

// Step until every vehicle is terminal.
// Stops early with ctx's error when ctx is done, or ErrHourLimit after maxHours
// steps (maxHours <= 0 means no limit).
func (s *Simulation) Run(ctx context.Context, maxHours int) error {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run simulation: at hour %d: %w", s.hour, err)
		}
		if maxHours > 0 && s.hour >= maxHours {
			return fmt.Errorf("run simulation: %w after %d hours", ErrHourLimit, s.hour)
		}
		s.Step()
	}

	s.log.Info().Int("hours", s.hour).Msg("simulation finished")
	return nil
}

func (s *Simulation) recordTransition(v *domain.Vehicle, from, to domain.State) {
	metrics.Transitions.WithLabelValues(to.String()).Inc()

	s.log.Info().
		Str("vehicle", v.Name()).
		Str("from", from.String()).
		Str("to", to.String()).
		Int("hour", s.hour).
		Msg("vehicle transition")
}
