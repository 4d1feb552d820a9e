// Package config loads, normalizes, and validates reltag configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// RELTAG_LOG_LEVEL and RELTAG_CATALOG. The Config type centralizes every knob
// the classifier, scanner, catalog and CLI need so they can be discovered in
// one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical extensions, and clear validation errors.
package config
