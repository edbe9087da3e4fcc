package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"voyage-simulator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAndLoadScenario(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedFromJSON(db, writeSeedFile(t, sampleSeed())))

	got, err := NewSQLScenarioRepository(db).LoadScenario(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleSeed(), got)
}

func TestSeedReplacesPreviousScenario(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedScenario(db, sampleSeed()))

	smaller := domain.ScenarioSeed{
		Locations: []domain.LocationSeed{{Name: " Luna ", HoursPerDay: 708}},
	}
	require.NoError(t, SeedScenario(db, smaller))

	got, err := NewSQLScenarioRepository(db).LoadScenario(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.LocationSeed{{Name: "Luna", HoursPerDay: 708}}, got.Locations)
	assert.Empty(t, got.Vehicles)
	assert.Empty(t, got.People)
}

func TestLoadScenarioEmptyStore(t *testing.T) {
	db := openTestDB(t)

	_, err := NewSQLScenarioRepository(db).LoadScenario(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReadSeedFileRejectsBadRows(t *testing.T) {
	seed := sampleSeed()
	seed.People[1].Vehicle = "  "

	_, err := ReadSeedFile(writeSeedFile(t, seed))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = ReadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = ReadSeedFile(bad)
	assert.Error(t, err)
}

func TestPostgresBind(t *testing.T) {
	assert.Equal(t, "VALUES ($1, $2, $3)", postgresBind("VALUES (?, ?, ?)"))
	assert.Equal(t, "SELECT 1", postgresBind("SELECT 1"))
}

func TestNilDB(t *testing.T) {
	assert.Error(t, InitSchema(nil))
	assert.Error(t, SeedScenario(nil, sampleSeed()))

	_, err := NewSQLScenarioRepository(nil).LoadScenario(context.Background())
	assert.Error(t, err)
}
