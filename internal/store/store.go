// Package store persists modeling run records to SQLite. One row per
// pipeline run: inputs, tuning, output shape, status, and timings.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// RunStatus values for the model_runs.status column.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// RunRecord is one persisted modeling run.
type RunRecord struct {
	ID                 int64      `json:"id"`
	RunID              string     `json:"run_id"`
	Status             string     `json:"status"`
	Nx                 int        `json:"nx"`
	Ny                 int        `json:"ny"`
	Nt                 int        `json:"nt"`
	DtMs               float64    `json:"dt_ms"`
	WaveletFrequencyHz float64    `json:"wavelet_frequency_hz"`
	GlobalTmaxMs       float64    `json:"global_tmax_ms"`
	Error              string     `json:"error,omitempty"`
	StartedAt          time.Time  `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

// RunStore provides persistence for modeling runs.
type RunStore struct {
	db *sql.DB
}

// Open opens (or creates) the run database at path.
func Open(path string) (*RunStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open run database: %w", err)
	}
	return &RunStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *RunStore) Close() error { return s.db.Close() }

// InsertRun creates a record when a run starts.
func (s *RunStore) InsertRun(rec RunRecord) error {
	query := `
		INSERT INTO model_runs (
			run_id, status, nx, ny, dt_ms, wavelet_frequency_hz, started_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		rec.RunID,
		rec.Status,
		rec.Nx,
		rec.Ny,
		rec.DtMs,
		rec.WaveletFrequencyHz,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", rec.RunID, err)
	}
	return nil
}

// CompleteRun marks a run as finished and records its output dimensions.
func (s *RunStore) CompleteRun(runID string, nt int, globalTmaxMs float64, completedAt time.Time) error {
	query := `
		UPDATE model_runs
		SET status = ?, nt = ?, global_tmax_ms = ?, completed_at = ?
		WHERE run_id = ?
	`
	res, err := s.db.Exec(query, StatusCompleted, nt, globalTmaxMs,
		completedAt.UTC().Format(time.RFC3339Nano), runID)
	if err != nil {
		return fmt.Errorf("complete run %s: %w", runID, err)
	}
	return requireOneRow(res, runID)
}

// FailRun marks a run as failed with the failure text.
func (s *RunStore) FailRun(runID, errText string, completedAt time.Time) error {
	query := `
		UPDATE model_runs
		SET status = ?, error = ?, completed_at = ?
		WHERE run_id = ?
	`
	res, err := s.db.Exec(query, StatusFailed, errText,
		completedAt.UTC().Format(time.RFC3339Nano), runID)
	if err != nil {
		return fmt.Errorf("fail run %s: %w", runID, err)
	}
	return requireOneRow(res, runID)
}

// GetRun fetches a run by its run_id.
func (s *RunStore) GetRun(runID string) (*RunRecord, error) {
	query := `
		SELECT id, run_id, status, nx, ny, COALESCE(nt, 0),
		       dt_ms, wavelet_frequency_hz, COALESCE(global_tmax_ms, 0),
		       COALESCE(error, ''), started_at, completed_at
		FROM model_runs WHERE run_id = ?
	`
	var (
		rec         RunRecord
		startedAt   string
		completedAt sql.NullString
	)
	err := s.db.QueryRow(query, runID).Scan(
		&rec.ID, &rec.RunID, &rec.Status, &rec.Nx, &rec.Ny, &rec.Nt,
		&rec.DtMs, &rec.WaveletFrequencyHz, &rec.GlobalTmaxMs,
		&rec.Error, &startedAt, &completedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return nil, fmt.Errorf("get run %s: parse started_at: %w", runID, err)
	}
	if completedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("get run %s: parse completed_at: %w", runID, err)
		}
		rec.CompletedAt = &t
	}
	return &rec, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *RunStore) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT run_id FROM model_runs
		ORDER BY started_at DESC LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	recs := make([]RunRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := s.GetRun(id)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, nil
}

func requireOneRow(res sql.Result, runID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}
