package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"reltag/internal/scan"
)

const runColumns = "id, source, started_at, finished_at, total, classified, partial, skipped, not_release, failures"

// BeginRun creates a run for source (a directory, feed file or "watch:<dir>").
func (s *Store) BeginRun(ctx context.Context, source string) (Run, error) {
	if err := s.writable(); err != nil {
		return Run{}, err
	}
	run := Run{
		ID:        uuid.NewString(),
		Source:    strings.TrimSpace(source),
		StartedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, source, started_at) VALUES (?, ?, ?)`,
		run.ID, run.Source, run.StartedAt.Format(timeLayout),
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// FinishRun stamps the run as finished and stores its summary.
func (s *Store) FinishRun(ctx context.Context, runID string, summary scan.Summary) error {
	if err := s.writable(); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs
         SET finished_at = ?, total = ?, classified = ?, partial = ?,
             skipped = ?, not_release = ?, failures = ?
         WHERE id = ?`,
		time.Now().UTC().Format(timeLayout),
		summary.Total, summary.Classified, summary.Partial,
		summary.Skipped, summary.NotRelease, summary.Failures,
		runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return requireAffected(res, runID)
}

// GetRun fetches one run.
func (s *Store) GetRun(ctx context.Context, runID string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the newest runs first. A limit <= 0 returns every run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Prune deletes all but the newest keep runs together with their entries and
// returns how many runs were removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if err := s.writable(); err != nil {
		return 0, err
	}
	if keep < 0 {
		keep = 0
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (
            SELECT id FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?
        )`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune rows affected: %w", err)
	}
	return removed, nil
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (Run, error) {
	var (
		run         Run
		startedRaw  string
		finishedRaw sql.NullString
	)
	if err := scanner.Scan(
		&run.ID,
		&run.Source,
		&startedRaw,
		&finishedRaw,
		&run.Summary.Total,
		&run.Summary.Classified,
		&run.Summary.Partial,
		&run.Summary.Skipped,
		&run.Summary.NotRelease,
		&run.Summary.Failures,
	); err != nil {
		return Run{}, err
	}
	if started, err := parseTimeString(startedRaw); err == nil {
		run.StartedAt = started
	}
	if finishedRaw.Valid {
		if finished, err := parseTimeString(finishedRaw.String); err == nil {
			run.FinishedAt = &finished
		}
	}
	return run, nil
}

func requireAffected(res sql.Result, runID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}
