package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"voyage-simulator/internal/domain"

	"github.com/google/uuid"
)

// SQLite-backed implementation of the RunStore port.
// Reports are stored as JSON text; timestamps as fixed-width UTC text so
// ORDER BY on the column is chronological.
type SQLiteRunStore struct{ DB *sql.DB }

const runTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func NewSQLiteRunStore(db *sql.DB) *SQLiteRunStore {
	return &SQLiteRunStore{DB: db}
}

func (s *SQLiteRunStore) SaveRun(ctx context.Context, run domain.RunSummary) error {
	if s.DB == nil {
		return errors.New("sqlite run store: DB is nil")
	}

	report, err := json.Marshal(run.Report)
	if err != nil {
		return fmt.Errorf("save run %s: encode report: %w", run.ID, err)
	}

	query := `
	INSERT INTO runs (
		id,
		started_at,
		hours,
		arrived,
		destroyed,
		report
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		run.ID.String(),
		run.StartedAt.UTC().Format(runTimeLayout),
		run.Hours,
		run.Arrived,
		run.Destroyed,
		string(report),
	)
	if err != nil {
		return fmt.Errorf("save run %s: insert: %w", run.ID, err)
	}

	return nil
}

func (s *SQLiteRunStore) ListRuns(ctx context.Context) ([]domain.RunSummary, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite run store: DB is nil")
	}

	query := `
	SELECT
		id,
		started_at,
		hours,
		arrived,
		destroyed,
		report
	FROM runs
	ORDER BY started_at DESC, id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list runs: query runs table: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.RunSummary, 0, 16)
	for rows.Next() {
		var (
			id, started, report string
			run                 domain.RunSummary
		)
		if err := rows.Scan(&id, &started, &run.Hours, &run.Arrived, &run.Destroyed, &report); err != nil {
			return nil, fmt.Errorf("list runs: scan row: %w", err)
		}

		if run.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("list runs: parse id %q: %w", id, err)
		}
		if run.StartedAt, err = time.Parse(runTimeLayout, started); err != nil {
			return nil, fmt.Errorf("list runs: parse started_at %q: %w", started, err)
		}
		if err := json.Unmarshal([]byte(report), &run.Report); err != nil {
			return nil, fmt.Errorf("list runs: decode report for %s: %w", id, err)
		}

		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return runs, nil
}
