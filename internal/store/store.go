// Package store persists solve-run records so repeated runs and convergence
// sweeps accumulate a queryable history.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/beam.report/internal/beam"
)

// Run is one persisted solve record.
type Run struct {
	RunID         string  `json:"run_id"`
	GridPoints    int     `json:"grid_points"`
	BodyForce     float64 `json:"body_force"`
	Spacing       float64 `json:"spacing"`
	TipDeflection float64 `json:"tip_deflection"`
	MaxAbsError   float64 `json:"max_abs_error"`
	RMSError      float64 `json:"rms_error"`
	DurationNanos int64   `json:"duration_nanos"`
	CreatedAt     int64   `json:"created_at"`
}

// RunFromResult builds a Run record from a completed solve.
func RunFromResult(res *beam.Result) *Run {
	return &Run{
		GridPoints:    res.Grid.Len(),
		BodyForce:     res.BodyForce,
		Spacing:       res.Grid.Spacing(),
		TipDeflection: res.TipDeflection(),
		MaxAbsError:   res.Comparison.MaxAbsError,
		RMSError:      res.Comparison.RMSError,
		DurationNanos: res.Elapsed.Nanoseconds(),
	}
}

// RunStore provides persistence for solve runs.
type RunStore struct {
	db *sql.DB
}

// Open opens (or creates) the sqlite database at path and applies any
// pending schema migrations.
func Open(path string) (*RunStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &RunStore{db: db}
	if err := s.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *RunStore) Close() error {
	return s.db.Close()
}

// Insert persists a new run. If RunID is empty, a UUID is generated; if
// CreatedAt is zero, the current time is recorded.
func (s *RunStore) Insert(r *Run) error {
	if r.RunID == "" {
		r.RunID = uuid.New().String()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().UnixNano()
	}

	_, err := s.db.Exec(`
		INSERT INTO solve_runs (
			run_id, grid_points, body_force, spacing,
			tip_deflection, max_abs_error, rms_error,
			duration_nanos, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GridPoints, r.BodyForce, r.Spacing,
		r.TipDeflection, r.MaxAbsError, r.RMSError,
		r.DurationNanos, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// List returns up to limit runs, newest first. A non-positive limit returns
// all runs.
func (s *RunStore) List(limit int) ([]*Run, error) {
	q := `
		SELECT run_id, grid_points, body_force, spacing,
			tip_deflection, max_abs_error, rms_error,
			duration_nanos, created_at
		FROM solve_runs
		ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []*Run
	for rows.Next() {
		r := &Run{}
		if err := rows.Scan(
			&r.RunID, &r.GridPoints, &r.BodyForce, &r.Spacing,
			&r.TipDeflection, &r.MaxAbsError, &r.RMSError,
			&r.DurationNanos, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListByGridPoints returns all runs for a given grid size, newest first.
func (s *RunStore) ListByGridPoints(n int) ([]*Run, error) {
	rows, err := s.db.Query(`
		SELECT run_id, grid_points, body_force, spacing,
			tip_deflection, max_abs_error, rms_error,
			duration_nanos, created_at
		FROM solve_runs
		WHERE grid_points = ?
		ORDER BY created_at DESC`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []*Run
	for rows.Next() {
		r := &Run{}
		if err := rows.Scan(
			&r.RunID, &r.GridPoints, &r.BodyForce, &r.Spacing,
			&r.TipDeflection, &r.MaxAbsError, &r.RMSError,
			&r.DurationNanos, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
