// Package catalog persists classification runs in SQLite.
//
// A run groups the outcomes of one scan, watch session or feed import. Each
// outcome is stored with its tokens, residual text and failures as JSON plus
// a case-folded title key so the same show spelled differently across
// releases collapses into one row of the Shows report.
//
// Writers hold an exclusive file lock next to the database; readers take a
// shared one. Opening while the other side holds the lock fails with
// ErrLocked instead of blocking.
package catalog
