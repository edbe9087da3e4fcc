package services

import (
	"context"
	"errors"
	"testing"
	"voyage-simulator/internal/domain"
	"voyage-simulator/internal/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each method is a function field; set only the ones the test needs.
type mockScenarioRepo struct {
	load func(ctx context.Context) (domain.ScenarioSeed, error)
}

func (m *mockScenarioRepo) LoadScenario(ctx context.Context) (domain.ScenarioSeed, error) {
	return m.load(ctx)
}

type mockRunStore struct {
	saved []domain.RunSummary
	err   error
}

func (m *mockRunStore) SaveRun(_ context.Context, run domain.RunSummary) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, run)
	return nil
}

func (m *mockRunStore) ListRuns(context.Context) ([]domain.RunSummary, error) {
	return m.saved, nil
}

var (
	_ ports.ScenarioRepository = (*mockScenarioRepo)(nil)
	_ ports.RunStore           = (*mockRunStore)(nil)
)

func nopLogger() zerolog.Logger { return zerolog.Nop() }

func TestRunScenarioSavesSummary(t *testing.T) {
	repo := &mockScenarioRepo{load: func(context.Context) (domain.ScenarioSeed, error) {
		return singleVoyageSeed(1000), nil
	}}
	store := &mockRunStore{}

	got, err := RunScenario(context.Background(), RunScenarioRequest{}, repo, store, nopLogger())
	require.NoError(t, err)

	require.Len(t, store.saved, 1)
	assert.Equal(t, got.ID, store.saved[0].ID)
	assert.Equal(t, 1, got.Arrived)
}

func TestRunScenarioPropagatesErrors(t *testing.T) {
	loadErr := errors.New("disk on fire")
	repo := &mockScenarioRepo{load: func(context.Context) (domain.ScenarioSeed, error) {
		return domain.ScenarioSeed{}, loadErr
	}}

	_, err := RunScenario(context.Background(), RunScenarioRequest{}, repo, &mockRunStore{}, nopLogger())
	assert.ErrorIs(t, err, loadErr)

	saveErr := errors.New("store full")
	repo.load = func(context.Context) (domain.ScenarioSeed, error) { return singleVoyageSeed(1000), nil }
	_, err = RunScenario(context.Background(), RunScenarioRequest{}, repo, &mockRunStore{err: saveErr}, nopLogger())
	assert.ErrorIs(t, err, saveErr)

	_, err = RunScenario(context.Background(), RunScenarioRequest{MaxHours: 2}, repo, &mockRunStore{}, nopLogger())
	assert.ErrorIs(t, err, ErrHourLimit)
}
