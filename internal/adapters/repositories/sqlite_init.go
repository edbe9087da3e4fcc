package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"voyage-simulator/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	return initSchema(db, sqliteSchema)
}

var sqliteSchema = []string{
	`
	CREATE TABLE IF NOT EXISTS locations (
		position INTEGER NOT NULL,
		name TEXT PRIMARY KEY,
		hours_per_day INTEGER NOT NULL,
		epoch_day INTEGER NOT NULL,
		epoch_hour INTEGER NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS vehicles (
		position INTEGER NOT NULL,
		name TEXT PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		departure_day INTEGER NOT NULL,
		departure_hour INTEGER NOT NULL,
		transit_hours INTEGER NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS people (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		lifetime_hours INTEGER NOT NULL,
		vehicle TEXT NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		hours INTEGER NOT NULL,
		arrived INTEGER NOT NULL,
		destroyed INTEGER NOT NULL,
		report TEXT NOT NULL
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_runs_started_at
	ON runs(started_at);
	`,
}

func initSchema(db *sql.DB, statements []string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the stored scenario with the contents of a JSON seed file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	seed, err := ReadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed scenario: %w", err)
	}

	return SeedScenario(db, seed)
}

// Replace the stored scenario with seed.
func SeedScenario(db *sql.DB, seed domain.ScenarioSeed) error {
	return seedScenario(db, seed, sqliteBind)
}

func seedScenario(db *sql.DB, seed domain.ScenarioSeed, bind func(string) string) error {
	if db == nil {
		return errors.New("seed scenario: DB is nil")
	}

	if err := normalizeSeed(&seed); err != nil {
		return fmt.Errorf("seed scenario: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed scenario: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"people", "vehicles", "locations"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("seed scenario: clear %s: %w", table, err)
		}
	}

	insertLocation, err := tx.Prepare(bind(`
	INSERT INTO locations (
		position,
		name,
		hours_per_day,
		epoch_day,
		epoch_hour
	)
	VALUES (?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed scenario: prepare location insert: %w", err)
	}
	defer insertLocation.Close()

	for i, l := range seed.Locations {
		if _, err := insertLocation.Exec(i, l.Name, l.HoursPerDay, l.EpochDay, l.EpochHour); err != nil {
			return fmt.Errorf("seed scenario: insert location %q: %w", l.Name, err)
		}
	}

	insertVehicle, err := tx.Prepare(bind(`
	INSERT INTO vehicles (
		position,
		name,
		origin,
		destination,
		departure_day,
		departure_hour,
		transit_hours
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed scenario: prepare vehicle insert: %w", err)
	}
	defer insertVehicle.Close()

	for i, v := range seed.Vehicles {
		if _, err := insertVehicle.Exec(i, v.Name, v.Origin, v.Destination, v.DepartureDay, v.DepartureHour, v.TransitHours); err != nil {
			return fmt.Errorf("seed scenario: insert vehicle %q: %w", v.Name, err)
		}
	}

	insertPerson, err := tx.Prepare(bind(`
	INSERT INTO people (
		position,
		name,
		age,
		lifetime_hours,
		vehicle
	)
	VALUES (?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed scenario: prepare person insert: %w", err)
	}
	defer insertPerson.Close()

	for i, p := range seed.People {
		if _, err := insertPerson.Exec(i, p.Name, p.Age, p.LifetimeHours, p.Vehicle); err != nil {
			return fmt.Errorf("seed scenario: insert person %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed scenario: commit tx: %w", err)
	}

	return nil
}

func sqliteBind(q string) string { return q }
