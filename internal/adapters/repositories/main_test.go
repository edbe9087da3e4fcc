package repositories

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"voyage-simulator/internal/domain"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// openTestDB returns a fresh in-memory SQLite database with the schema applied.
// One connection only: every new :memory: connection is a separate database.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSchema(db))
	return db
}

func sampleSeed() domain.ScenarioSeed {
	return domain.ScenarioSeed{
		Locations: []domain.LocationSeed{
			{Name: "Earth", HoursPerDay: 24},
			{Name: "Mars", HoursPerDay: 25, EpochDay: 3, EpochHour: 1},
		},
		Vehicles: []domain.VehicleSeed{
			{Name: "Ares", Origin: "Earth", Destination: "Mars", DepartureDay: 0, DepartureHour: 10, TransitHours: 5},
			{Name: "Hermes", Origin: "Mars", Destination: "Earth", DepartureDay: 4, TransitHours: 30},
		},
		People: []domain.PersonSeed{
			{Name: "Ada", Age: 30, LifetimeHours: 100, Vehicle: "Ares"},
			{Name: "Grace", Age: 41, LifetimeHours: 12, Vehicle: "Hermes"},
		},
	}
}

func writeSeedFile(t *testing.T, seed any) string {
	t.Helper()

	b, err := json.Marshal(seed)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}
