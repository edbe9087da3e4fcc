package repositories

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"voyage-simulator/internal/domain"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	return initSchema(db, postgresSchema)
}

var postgresSchema = []string{
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
		origin TEXT NOT NULL REFERENCES locations(name),
		destination TEXT NOT NULL REFERENCES locations(name),
		departure_day INTEGER NOT NULL,
		departure_hour INTEGER NOT NULL,
		transit_hours INTEGER NOT NULL CHECK (transit_hours >= 0)
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS people (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		lifetime_hours INTEGER NOT NULL,
		vehicle TEXT NOT NULL REFERENCES vehicles(name)
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS runs (
		id UUID PRIMARY KEY,
		started_at TIMESTAMPTZ NOT NULL,
		hours INTEGER NOT NULL,
		arrived INTEGER NOT NULL,
		destroyed INTEGER NOT NULL,
		report JSONB NOT NULL
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_runs_started_at
	ON runs(started_at);
	`,
}

// Replace the stored Postgres scenario with the contents of a JSON seed file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	seed, err := ReadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed scenario: %w", err)
	}

	return SeedPostgresScenario(db, seed)
}

func SeedPostgresScenario(db *sql.DB, seed domain.ScenarioSeed) error {
	return seedScenario(db, seed, postgresBind)
}

// Rewrite ? placeholders as $1, $2, ... for Postgres.
func postgresBind(q string) string {
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
