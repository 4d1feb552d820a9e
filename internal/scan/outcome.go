package scan

import (
	"reltag/internal/classify"
)

// Status is the admission and classification verdict for one file.
type Status string

const (
	// StatusSkipped marks files whose extension is not a video type.
	StatusSkipped Status = "skipped"
	// StatusNotRelease marks video files without the bracket-tag release shape.
	StatusNotRelease Status = "not_release"
	// StatusClassified marks releases where every tag classified and no
	// residual text remained.
	StatusClassified Status = "classified"
	// StatusPartial marks releases with unclassified tags or residual text.
	StatusPartial Status = "partial"
)

// Outcome is the verdict for one path or name.
type Outcome struct {
	Path   string           `json:"path" yaml:"path"`
	Name   string           `json:"name" yaml:"name"`
	Status Status           `json:"status" yaml:"status"`
	Result *classify.Result `json:"result,omitempty" yaml:"result,omitempty"`
}

// Admitted reports whether the outcome went through the tokenizer.
func (o Outcome) Admitted() bool {
	return o.Result != nil
}

// Summary counts outcomes by status.
type Summary struct {
	Total      int `json:"total" yaml:"total"`
	Skipped    int `json:"skipped" yaml:"skipped"`
	NotRelease int `json:"not_release" yaml:"not_release"`
	Classified int `json:"classified" yaml:"classified"`
	Partial    int `json:"partial" yaml:"partial"`
	// Failures is the number of unclassified bracket tags across all outcomes.
	Failures int `json:"failures" yaml:"failures"`
}

// Summarize tallies outcomes.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		s.Total++
		switch o.Status {
		case StatusSkipped:
			s.Skipped++
		case StatusNotRelease:
			s.NotRelease++
		case StatusClassified:
			s.Classified++
		case StatusPartial:
			s.Partial++
		}
		if o.Result != nil {
			s.Failures += len(o.Result.Failures)
		}
	}
	return s
}
