// Package logging assembles structured slog loggers and formatting helpers used
// across reltag.
//
// It owns the configurable console/JSON handlers, the optional rotated JSON
// log file, and context-aware helpers so scan code can tag log lines with run
// identifiers and file paths. The package also provides a no-op logger for
// tests and library callers that do not care about diagnostics.
package logging
