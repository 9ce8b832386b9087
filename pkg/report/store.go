package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Store persists runs and checks in MySQL.
type Store struct {
	conn *sql.DB
}

// NewStore opens a MySQL connection and verifies it.
func NewStore(dsn string) (*Store, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{conn: conn}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// SaveRun inserts a finished run and all of its checks in one transaction.
func (s *Store) SaveRun(ctx context.Context, run Run, checks []Check) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO test_runs (id, name, status, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Name, run.Status, run.StartedAt, run.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO test_checks (id, run_id, name, status, duration_ms, error_message)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, c := range checks {
		_, err := stmt.ExecContext(ctx, c.ID, c.RunID, c.Name, c.Status, c.DurationMillis, c.ErrorMessage)
		if err != nil {
			return fmt.Errorf("failed to insert check: %w", err)
		}
	}

	return tx.Commit()
}

// GetRun retrieves a run and its checks by run ID.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, []Check, error) {
	var run Run
	err := s.conn.QueryRowContext(ctx, `
		SELECT id, name, status, started_at, completed_at
		FROM test_runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Name, &run.Status, &run.StartedAt, &run.CompletedAt)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get run: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, run_id, name, status, duration_ms, error_message
		FROM test_checks
		WHERE run_id = ?
		ORDER BY id
	`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get checks: %w", err)
	}
	defer rows.Close()

	var checks []Check
	for rows.Next() {
		var c Check
		if err := rows.Scan(&c.ID, &c.RunID, &c.Name, &c.Status, &c.DurationMillis, &c.ErrorMessage); err != nil {
			return nil, nil, fmt.Errorf("failed to scan check: %w", err)
		}
		checks = append(checks, c)
	}

	return &run, checks, rows.Err()
}

// ListRuns retrieves all runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, name, status, started_at, completed_at
		FROM test_runs
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Name, &run.Status, &run.StartedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
