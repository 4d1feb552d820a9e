package catalog

import (
	"time"

	"reltag/internal/classify"
	"reltag/internal/scan"
	"reltag/internal/token"
)

// Run is one recorded batch of outcomes.
type Run struct {
	ID         string       `json:"id" yaml:"id"`
	Source     string       `json:"source" yaml:"source"`
	StartedAt  time.Time    `json:"started_at" yaml:"started_at"`
	FinishedAt *time.Time   `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	Summary    scan.Summary `json:"summary" yaml:"summary"`
}

// Finished reports whether FinishRun was called for the run.
func (r Run) Finished() bool {
	return r.FinishedAt != nil
}

// Entry is one stored outcome.
type Entry struct {
	ID         int64              `json:"id" yaml:"id"`
	RunID      string             `json:"run_id" yaml:"run_id"`
	Path       string             `json:"path,omitempty" yaml:"path,omitempty"`
	Name       string             `json:"name" yaml:"name"`
	Status     scan.Status        `json:"status" yaml:"status"`
	Title      string             `json:"title,omitempty" yaml:"title,omitempty"`
	Group      string             `json:"group,omitempty" yaml:"group,omitempty"`
	Episode    *int               `json:"episode,omitempty" yaml:"episode,omitempty"`
	Tokens     []token.Token      `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Residual   []string           `json:"residual,omitempty" yaml:"residual,omitempty"`
	Failures   []classify.Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
	RecordedAt time.Time          `json:"recorded_at" yaml:"recorded_at"`
}

// Show aggregates entries sharing a folded title.
type Show struct {
	Key      string    `json:"key" yaml:"key"`
	Title    string    `json:"title" yaml:"title"`
	Episodes int       `json:"episodes" yaml:"episodes"`
	Entries  int       `json:"entries" yaml:"entries"`
	LastSeen time.Time `json:"last_seen" yaml:"last_seen"`
}
