package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"reltag/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose catalog and log file live in a unique
// temp directory per test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Catalog.Path = filepath.Join(base, "catalog.db")
	cfgVal.Scan.Workers = 2

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithCatalog enables catalog recording on the test config.
func WithCatalog() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.Enabled = true
	}
}

// WithExtraGroups adds release groups to the classifier configuration.
func WithExtraGroups(groups ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Classify.ExtraGroups = append(b.cfg.Classify.ExtraGroups, groups...)
	}
}

// WithStubbedFFprobe writes an ffprobe stand-in that prints payload and points
// the probe configuration at it.
func WithStubbedFFprobe(payload string) ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		payloadPath := filepath.Join(binDir, "ffprobe.json")
		if err := os.WriteFile(payloadPath, []byte(payload), 0o644); err != nil {
			b.t.Fatalf("write ffprobe payload: %v", err)
		}
		target := filepath.Join(binDir, "ffprobe")
		script := []byte("#!/bin/sh\ncat '" + payloadPath + "'\n")
		if err := os.WriteFile(target, script, 0o755); err != nil {
			b.t.Fatalf("write ffprobe stub: %v", err)
		}
		b.cfg.Probe.FFprobeBinary = target
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Catalog.Path)
}
