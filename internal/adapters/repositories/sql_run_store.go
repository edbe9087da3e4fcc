package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"voyage-simulator/internal/domain"
)

// Postgres-backed implementation of the RunStore port (pgx database/sql driver).
type PostgresRunStore struct{ DB *sql.DB }

func NewPostgresRunStore(db *sql.DB) *PostgresRunStore {
	return &PostgresRunStore{DB: db}
}

func (s *PostgresRunStore) SaveRun(ctx context.Context, run domain.RunSummary) error {
	if s.DB == nil {
		return errors.New("postgres run store: DB is nil")
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
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := s.DB.ExecContext(ctx, query, run.ID, run.StartedAt, run.Hours, run.Arrived, run.Destroyed, string(report)); err != nil {
		return fmt.Errorf("save run %s: insert: %w", run.ID, err)
	}

	return nil
}

func (s *PostgresRunStore) ListRuns(ctx context.Context) ([]domain.RunSummary, error) {
	if s.DB == nil {
		return nil, errors.New("postgres run store: DB is nil")
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
			run    domain.RunSummary
			report []byte
		)
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.Hours, &run.Arrived, &run.Destroyed, &report); err != nil {
			return nil, fmt.Errorf("list runs: scan row: %w", err)
		}
		if err := json.Unmarshal(report, &run.Report); err != nil {
			return nil, fmt.Errorf("list runs: decode report for %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return runs, nil
}
