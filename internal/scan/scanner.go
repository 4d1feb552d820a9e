package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"reltag/internal/classify"
	"reltag/internal/config"
	"reltag/internal/logging"
)

// ErrNotDirectory is returned when a scan or watch root is not a directory.
var ErrNotDirectory = errors.New("scan: root is not a directory")

// Scanner classifies files in bulk. The zero value uses the default
// classifier, one worker, and skips hidden entries.
type Scanner struct {
	Classifier    *classify.Classifier
	Workers       int
	IncludeHidden bool
	Logger        *slog.Logger
}

// New builds a Scanner from the [scan] configuration section.
func New(cfg *config.Config, classifier *classify.Classifier, logger *slog.Logger) *Scanner {
	s := &Scanner{
		Classifier: classifier,
		Logger:     logging.NewComponentLogger(logger, "scan"),
	}
	if cfg != nil {
		s.Workers = cfg.Scan.Workers
		s.IncludeHidden = cfg.Scan.IncludeHidden
	}
	return s
}

func (s *Scanner) classifier() *classify.Classifier {
	if s.Classifier == nil {
		return classify.New()
	}
	return s.Classifier
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.NewNop()
	}
	return s.Logger
}

func (s *Scanner) workers() int {
	if s.Workers <= 0 {
		return 1
	}
	return s.Workers
}

// Evaluate runs the admission gate on a file name and tokenizes it when
// admitted. Skip is checked before IsAnime.
func Evaluate(c *classify.Classifier, path string) Outcome {
	name := filepath.Base(path)
	out := Outcome{Path: path, Name: name}
	switch {
	case c.Skip(name):
		out.Status = StatusSkipped
	case !c.IsAnime(name):
		out.Status = StatusNotRelease
	default:
		res := c.TokenizeFile(name)
		out.Result = &res
		out.Status = statusFor(res)
	}
	return out
}

// EvaluateName handles bare release titles. Titles that carry an extension go
// through the file gate; titles without one are tokenized as-is.
func EvaluateName(c *classify.Classifier, name string) Outcome {
	if filepath.Ext(name) != "" {
		out := Evaluate(c, name)
		out.Path = ""
		return out
	}
	res := c.Tokenize(name)
	return Outcome{Name: name, Status: statusFor(res), Result: &res}
}

func statusFor(res classify.Result) Status {
	if res.Complete() {
		return StatusClassified
	}
	return StatusPartial
}

// Scan walks root and returns one outcome per regular file, sorted by path.
// Unreadable subdirectories are logged and skipped.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Outcome, error) {
	logger := logging.WithContext(ctx, s.logger())
	outcomes, err := s.scan(ctx, root, logger)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		logging.ErrorWithContext(logger, "scan failed", "scan_failed",
			logging.String(logging.FieldPath, root),
			logging.Error(err),
		)
	}
	return outcomes, err
}

func (s *Scanner) scan(ctx context.Context, root string, logger *slog.Logger) ([]Outcome, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	paths, err := s.collect(ctx, root, logger)
	if err != nil {
		return nil, err
	}

	c := s.classifier()
	outcomes := make([]Outcome, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = Evaluate(c, path)
			logger.Debug("file evaluated",
				logging.String(logging.FieldPath, path),
				logging.String("status", string(outcomes[i].Status)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	slices.SortFunc(outcomes, func(a, b Outcome) int { return strings.Compare(a.Path, b.Path) })
	summary := Summarize(outcomes)
	logger.Info("scan complete",
		logging.String(logging.FieldEventType, "scan_complete"),
		logging.String(logging.FieldPath, root),
		logging.Int("files", summary.Total),
		logging.Int("classified", summary.Classified),
		logging.Int("partial", summary.Partial),
		logging.Int("skipped", summary.Skipped+summary.NotRelease),
	)
	return outcomes, nil
}

func (s *Scanner) collect(ctx context.Context, root string, logger *slog.Logger) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			logging.WarnWithContext(logger, "unreadable entry skipped", "scan_entry_unreadable",
				logging.String(logging.FieldPath, path),
				logging.Error(err),
				logging.String(logging.FieldImpact, "files below this entry are not classified"),
				logging.String(logging.FieldErrorHint, "check directory permissions"),
			)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path != root && !s.IncludeHidden && isHidden(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return paths, nil
}

// ClassifyNames evaluates bare names (for example feed titles) concurrently.
// Outcomes keep the input order.
func (s *Scanner) ClassifyNames(ctx context.Context, names []string) ([]Outcome, error) {
	c := s.classifier()
	outcomes := make([]Outcome, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = EvaluateName(c, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
