// Package duckdb stores validation run history in a DuckDB database.
package duckdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"mcpregistry/internal/runner"
	"mcpregistry/internal/validator"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store records runs and their outcomes.
type Store struct {
	db *sql.DB
}

// RunRecord is a stored run header.
type RunRecord struct {
	RunID      string
	Mode       runner.Mode
	Target     string
	Schema     string
	StartedAt  time.Time
	FinishedAt time.Time
	Summary    runner.RunSummary
}

// OutcomeRecord is a stored per-file outcome.
type OutcomeRecord struct {
	Position    int
	Path        string
	Name        string
	Status      string
	Issues      []validator.Issue
	Fingerprint string
}

// Open opens or creates a history database and applies the schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("duckdb: dsn is required")
	}
	if dsn != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun persists one run row and one row per outcome in a transaction.
func (s *Store) RecordRun(ctx context.Context, results runner.Results) error {
	if results.RunID == "" {
		return errors.New("duckdb: run_id is required")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, mode, target, schema_path, started_at, finished_at, total, passed, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		results.RunID,
		string(results.Mode),
		results.Target,
		nullableString(results.Schema),
		results.StartedAt.UTC(),
		results.FinishedAt.UTC(),
		results.Summary.Total,
		results.Summary.Passed,
		results.Summary.Failed,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, outcome := range results.Outcomes {
		issues := outcome.Issues
		if issues == nil {
			issues = []validator.Issue{}
		}
		payload, err := CanonicalJSON(issues)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO outcomes (run_id, position, path, name, status, issue_count, issues, fingerprint)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			results.RunID,
			i,
			outcome.Path,
			outcome.Name,
			outcome.Status(),
			len(issues),
			string(payload),
			fingerprintBytes(payload),
		); err != nil {
			return fmt.Errorf("insert outcome %s: %w", outcome.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// LastRun returns the most recently started run for a target. The boolean is
// false when no run has been recorded.
func (s *Store) LastRun(ctx context.Context, target string) (RunRecord, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT run_id, mode, target, COALESCE(schema_path, ''), started_at, finished_at, total, passed, failed
		 FROM runs
		 WHERE target = ?
		 ORDER BY started_at DESC, run_id DESC
		 LIMIT 1`,
		target,
	)
	var (
		record RunRecord
		mode   string
	)
	err := row.Scan(
		&record.RunID,
		&mode,
		&record.Target,
		&record.Schema,
		&record.StartedAt,
		&record.FinishedAt,
		&record.Summary.Total,
		&record.Summary.Passed,
		&record.Summary.Failed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, false, nil
	}
	if err != nil {
		return RunRecord{}, false, fmt.Errorf("query last run: %w", err)
	}
	record.Mode = runner.Mode(mode)
	return record, true, nil
}

// Outcomes returns the outcomes of a run in validation order.
func (s *Store) Outcomes(ctx context.Context, runID string) ([]OutcomeRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, path, name, status, issues, fingerprint
		 FROM outcomes
		 WHERE run_id = ?
		 ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var out []OutcomeRecord
	for rows.Next() {
		var (
			record  OutcomeRecord
			payload string
		)
		if err := rows.Scan(&record.Position, &record.Path, &record.Name, &record.Status, &payload, &record.Fingerprint); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &record.Issues); err != nil {
			return nil, fmt.Errorf("decode issues for %s: %w", record.Name, err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}
	return out, nil
}

// FailureCounts returns how many recorded runs each file has failed in.
func (s *Store) FailureCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, failed_runs FROM v_failures`)
	if err != nil {
		return nil, fmt.Errorf("query failures: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			name  string
			count int
		)
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("scan failure: %w", err)
		}
		counts[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate failures: %w", err)
	}
	return counts, nil
}

// nullableString converts an empty string into a SQL NULL.
func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
