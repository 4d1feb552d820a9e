package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"reltag/internal/scan"
)

const entryColumns = "id, run_id, path, name, status, title, release_group, episode, tokens_json, residual_json, failures_json, recorded_at"

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Record stores one outcome under runID.
func (s *Store) Record(ctx context.Context, runID string, outcome scan.Outcome) error {
	if err := s.writable(); err != nil {
		return err
	}
	if _, err := s.GetRun(ctx, runID); err != nil {
		return err
	}
	return insertEntry(ctx, s.db, runID, outcome, time.Now().UTC())
}

// RecordAll stores outcomes under runID in a single transaction.
func (s *Store) RecordAll(ctx context.Context, runID string, outcomes []scan.Outcome) error {
	if err := s.writable(); err != nil {
		return err
	}
	if _, err := s.GetRun(ctx, runID); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	for _, outcome := range outcomes {
		if err := insertEntry(ctx, tx, runID, outcome, now); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit entries: %w", err)
	}
	return nil
}

func insertEntry(ctx context.Context, db execer, runID string, outcome scan.Outcome, now time.Time) error {
	var (
		title, key, group              any
		episode                        any
		tokensJSON, residual, failures any
	)
	if res := outcome.Result; res != nil {
		if t, ok := res.Title(); ok {
			title = t
			key = TitleKey(t)
		}
		if g, ok := res.Group(); ok {
			group = g
		}
		if eps := res.Episodes(); len(eps) > 0 {
			episode = eps[0]
		}
		var err error
		if tokensJSON, err = marshalJSON(res.Tokens); err != nil {
			return err
		}
		if residual, err = marshalJSON(res.Residual); err != nil {
			return err
		}
		if len(res.Failures) > 0 {
			if failures, err = marshalJSON(res.Failures); err != nil {
				return err
			}
		}
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO entries (
            run_id, path, name, status, title, title_key, release_group, episode,
            tokens_json, residual_json, failures_json, recorded_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		nullableString(outcome.Path),
		outcome.Name,
		string(outcome.Status),
		title, key, group, episode,
		tokensJSON, residual, failures,
		now.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert entry %q: %w", outcome.Name, err)
	}
	return nil
}

// Entries returns the outcomes recorded under runID in insertion order.
func (s *Store) Entries(ctx context.Context, runID string) ([]Entry, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		entry       Entry
		path        sql.NullString
		status      string
		title       sql.NullString
		group       sql.NullString
		episode     sql.NullInt64
		tokensRaw   sql.NullString
		residualRaw sql.NullString
		failuresRaw sql.NullString
		recordedRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.RunID,
		&path,
		&entry.Name,
		&status,
		&title,
		&group,
		&episode,
		&tokensRaw,
		&residualRaw,
		&failuresRaw,
		&recordedRaw,
	); err != nil {
		return Entry{}, err
	}
	entry.Path = path.String
	entry.Status = scan.Status(status)
	entry.Title = title.String
	entry.Group = group.String
	if episode.Valid {
		ep := int(episode.Int64)
		entry.Episode = &ep
	}
	if err := unmarshalJSON(tokensRaw, &entry.Tokens); err != nil {
		return Entry{}, fmt.Errorf("decode tokens: %w", err)
	}
	if err := unmarshalJSON(residualRaw, &entry.Residual); err != nil {
		return Entry{}, fmt.Errorf("decode residual: %w", err)
	}
	if err := unmarshalJSON(failuresRaw, &entry.Failures); err != nil {
		return Entry{}, fmt.Errorf("decode failures: %w", err)
	}
	if recorded, err := parseTimeString(recordedRaw); err == nil {
		entry.RecordedAt = recorded
	}
	return entry, nil
}

func marshalJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode entry field: %w", err)
	}
	return string(data), nil
}

func unmarshalJSON(raw sql.NullString, v any) error {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw.String), v)
}
