package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"voyage-simulator/internal/domain"
)

// database/sql implementation of the ScenarioRepository port.
// The read queries take no parameters, so the same code serves the SQLite
// and the Postgres schema.
type SQLScenarioRepository struct{ DB *sql.DB }

func NewSQLScenarioRepository(db *sql.DB) *SQLScenarioRepository {
	return &SQLScenarioRepository{DB: db}
}

// Return the stored scenario in seed order.
// An empty store is reported as domain.ErrNotFound.
func (s *SQLScenarioRepository) LoadScenario(ctx context.Context) (domain.ScenarioSeed, error) {
	if s.DB == nil {
		return domain.ScenarioSeed{}, errors.New("scenario repository: DB is nil")
	}

	var seed domain.ScenarioSeed
	var err error

	if seed.Locations, err = s.listLocations(ctx); err != nil {
		return domain.ScenarioSeed{}, err
	}
	if seed.Vehicles, err = s.listVehicles(ctx); err != nil {
		return domain.ScenarioSeed{}, err
	}
	if seed.People, err = s.listPeople(ctx); err != nil {
		return domain.ScenarioSeed{}, err
	}

	if len(seed.Locations) == 0 && len(seed.Vehicles) == 0 {
		return domain.ScenarioSeed{}, fmt.Errorf("load scenario: %w: no scenario stored", domain.ErrNotFound)
	}

	return seed, nil
}

func (s *SQLScenarioRepository) listLocations(ctx context.Context) ([]domain.LocationSeed, error) {
	query := `
	SELECT
		name,
		hours_per_day,
		epoch_day,
		epoch_hour
	FROM locations
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load scenario: query locations table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.LocationSeed, 0, 8)
	for rows.Next() {
		var l domain.LocationSeed
		if err := rows.Scan(&l.Name, &l.HoursPerDay, &l.EpochDay, &l.EpochHour); err != nil {
			return nil, fmt.Errorf("load scenario: scan location row: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load scenario: location row iteration: %w", err)
	}

	return out, nil
}

func (s *SQLScenarioRepository) listVehicles(ctx context.Context) ([]domain.VehicleSeed, error) {
	query := `
	SELECT
		name,
		origin,
		destination,
		departure_day,
		departure_hour,
		transit_hours
	FROM vehicles
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load scenario: query vehicles table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.VehicleSeed, 0, 8)
	for rows.Next() {
		var v domain.VehicleSeed
		if err := rows.Scan(&v.Name, &v.Origin, &v.Destination, &v.DepartureDay, &v.DepartureHour, &v.TransitHours); err != nil {
			return nil, fmt.Errorf("load scenario: scan vehicle row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load scenario: vehicle row iteration: %w", err)
	}

	return out, nil
}

func (s *SQLScenarioRepository) listPeople(ctx context.Context) ([]domain.PersonSeed, error) {
	query := `
	SELECT
		name,
		age,
		lifetime_hours,
		vehicle
	FROM people
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load scenario: query people table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PersonSeed, 0, 64)
	for rows.Next() {
		var p domain.PersonSeed
		if err := rows.Scan(&p.Name, &p.Age, &p.LifetimeHours, &p.Vehicle); err != nil {
			return nil, fmt.Errorf("load scenario: scan person row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load scenario: person row iteration: %w", err)
	}

	return out, nil
}
