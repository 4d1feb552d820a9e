package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"reltag/internal/logging"
)

// Watch classifies files created in (or moved into) dir and hands each
// outcome to fn until ctx is cancelled. Subdirectories are not watched.
// fn runs on the watch goroutine; it must not block for long.
func (s *Scanner) Watch(ctx context.Context, dir string, fn func(Outcome)) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	logger := logging.WithContext(ctx, s.logger())
	logger.Info("watch started",
		logging.String(logging.FieldEventType, "watch_started"),
		logging.String(logging.FieldPath, dir),
	)
	c := s.classifier()

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped",
				logging.String(logging.FieldEventType, "watch_stopped"),
				logging.String(logging.FieldPath, dir),
			)
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !s.IncludeHidden && isHidden(filepath.Base(event.Name)) {
				continue
			}
			fi, err := os.Stat(event.Name)
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
			outcome := Evaluate(c, event.Name)
			logger.Debug("file arrived",
				logging.String(logging.FieldPath, event.Name),
				logging.String("status", string(outcome.Status)),
			)
			fn(outcome)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.WarnWithContext(logger, "watch error", "watch_error",
				logging.Error(err),
				logging.String(logging.FieldImpact, "some file arrivals may be missed"),
				logging.String(logging.FieldErrorHint, "rerun scan on the directory to catch up"),
			)
		}
	}
}
