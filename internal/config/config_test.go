package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"reltag/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("RELTAG_CATALOG", "")
	t.Setenv("RELTAG_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantCatalog := filepath.Join(tempHome, ".local", "share", "reltag", "catalog.db")
	if cfg.Catalog.Path != wantCatalog {
		t.Fatalf("unexpected catalog path: got %q want %q", cfg.Catalog.Path, wantCatalog)
	}
	if cfg.Catalog.Enabled {
		t.Fatal("expected catalog disabled by default")
	}
	if cfg.Scan.Workers != runtime.NumCPU() {
		t.Fatalf("expected workers to default to NumCPU, got %d", cfg.Scan.Workers)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Probe.FFprobeBinary != "ffprobe" {
		t.Fatalf("unexpected ffprobe binary: %q", cfg.Probe.FFprobeBinary)
	}
}

func TestLoadNormalizesClassifySection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reltag.toml")
	body := `
[classify]
extra_groups = [" SubsPlease ", "", "SubsPlease", "Judas"]
extra_video_extensions = ["RMVB", ".Divx", "rmvb"]

[scan]
workers = 0
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected explicit config to be used, got %q exists=%v", resolved, exists)
	}
	if got := strings.Join(cfg.Classify.ExtraGroups, ","); got != "SubsPlease,Judas" {
		t.Fatalf("unexpected extra groups: %q", got)
	}
	if got := strings.Join(cfg.Classify.ExtraVideoExtensions, ","); got != ".rmvb,.divx" {
		t.Fatalf("unexpected extensions: %q", got)
	}
	if cfg.Scan.Workers < 1 {
		t.Fatalf("expected workers to be defaulted, got %d", cfg.Scan.Workers)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reltag.toml")
	if err := os.WriteFile(path, []byte("[classify]\nunknown_knob = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown configuration key")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "runs.db")
	t.Setenv("RELTAG_CATALOG", catalogPath)
	t.Setenv("RELTAG_LOG_LEVEL", "DEBUG")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Catalog.Enabled || cfg.Catalog.Path != catalogPath {
		t.Fatalf("expected catalog override, got %+v", cfg.Catalog)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level from env, got %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"level", func(c *config.Config) { c.Logging.Level = "verbose" }},
		{"workers", func(c *config.Config) { c.Scan.Workers = 10000 }},
		{"group brackets", func(c *config.Config) { c.Classify.ExtraGroups = []string{"[Bad]"} }},
		{"extension", func(c *config.Config) { c.Classify.ExtraVideoExtensions = []string{".a/b"} }},
		{"catalog path", func(c *config.Config) { c.Catalog.Enabled = true; c.Catalog.Path = " " }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSampleConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var cfg config.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected sample logging level: %q", cfg.Logging.Level)
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}

func TestEnsureDirectoriesCreatesCatalogAndLogDirs(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Catalog.Enabled = true
	cfg.Catalog.Path = filepath.Join(base, "data", "catalog.db")
	cfg.Logging.File = filepath.Join(base, "logs", "reltag.log")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{filepath.Join(base, "data"), filepath.Join(base, "logs")} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
	}
}
