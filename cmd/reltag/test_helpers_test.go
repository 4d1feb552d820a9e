package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reltag/internal/config"
	"reltag/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("RELTAG_CATALOG", "")
	t.Setenv("RELTAG_LOG_LEVEL", "")

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--log-level", "error"}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	quoted := make([]string, 0, len(cfg.Classify.ExtraGroups))
	for _, g := range cfg.Classify.ExtraGroups {
		quoted = append(quoted, fmt.Sprintf("%q", g))
	}
	content := fmt.Sprintf(
		"[classify]\nextra_groups = [%s]\n\n[scan]\nworkers = %d\n\n[catalog]\nenabled = %t\npath = %q\n\n[probe]\nffprobe_binary = %q\n",
		strings.Join(quoted, ", "),
		cfg.Scan.Workers,
		cfg.Catalog.Enabled,
		cfg.Catalog.Path,
		cfg.Probe.FFprobeBinary,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
