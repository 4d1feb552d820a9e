// Package main hosts the reltag CLI entrypoint and command graph.
//
// The Cobra command tree classifies release filenames, bracket tags, whole
// directories, watched drop folders and saved search feeds, and reports on
// the run catalog. It centralizes configuration resolution, logger setup and
// output formatting (table, JSON, YAML) so subcommands only gather data.
//
// Keep this package lean: new behavior belongs in the internal packages and
// is surfaced here through dedicated commands or flags.
package main
