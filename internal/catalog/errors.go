package catalog

import "errors"

var (
	// ErrLocked is returned by Open and OpenReader when another process holds
	// a conflicting lock on the catalog.
	ErrLocked = errors.New("catalog is locked by another process")
	// ErrSchemaMismatch indicates the database schema version doesn't match
	// the expected version.
	ErrSchemaMismatch = errors.New("catalog schema version mismatch")
	// ErrRunNotFound is returned when a run identifier is unknown.
	ErrRunNotFound = errors.New("run not found")
)
