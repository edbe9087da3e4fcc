package ports

import (
	"context"
	"voyage-simulator/internal/domain"
)

// Contract for persisting the outcome of completed simulation runs.
type RunStore interface {
	SaveRun(ctx context.Context, run domain.RunSummary) error
	// Return saved runs, most recent first.
	ListRuns(ctx context.Context) ([]domain.RunSummary, error)
}
