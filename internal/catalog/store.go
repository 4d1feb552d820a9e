package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db       *sql.DB
	path     string
	lock     *flock.Flock
	readOnly bool
}

// Open opens (creating if needed) the catalog at path for writing. It holds an
// exclusive lock on "<path>.lock" until Close.
func Open(path string) (*Store, error) {
	return open(path, false)
}

// OpenReader opens an existing catalog for reporting under a shared lock.
// Several readers may coexist; a writer may not.
func OpenReader(path string) (*Store, error) {
	return open(path, true)
}

func open(path string, readOnly bool) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("open catalog: empty path")
	}
	if readOnly {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure catalog directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	var (
		locked bool
		err    error
	)
	if readOnly {
		locked, err = lock.TryRLock()
	} else {
		locked, err = lock.TryLock()
	}
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lock.Path())
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Pragmas are per connection; one connection keeps foreign keys enforced.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: lock, readOnly: readOnly}
	if err := store.initSchema(context.Background()); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database and releases the lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
		s.db = nil
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && dbErr == nil {
			dbErr = fmt.Errorf("release catalog lock: %w", err)
		}
		s.lock = nil
	}
	return dbErr
}

func (s *Store) writable() error {
	if s.readOnly {
		return fmt.Errorf("catalog %s opened read-only", s.path)
	}
	return nil
}
