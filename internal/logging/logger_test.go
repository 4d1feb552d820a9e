package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reltag/internal/config"
	"reltag/internal/logging"
)

func TestNewFromConfigConsole(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "reltag.log")

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("written to rotated file", logging.String("k", "v"))

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(content), &record); err != nil {
		t.Fatalf("expected json record in log file, got %q: %v", content, err)
	}
	if record["msg"] != "written to rotated file" || record["level"] != "info" || record["k"] != "v" {
		t.Fatalf("unexpected record: %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "classify").Info("message without caller", logging.String("tag", "Dual Audio"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", line)
	}
	if !strings.Contains(line, "INFO classify: message without caller") {
		t.Fatalf("expected component prefix, got %q", line)
	}
	if !strings.Contains(line, `tag="Dual Audio"`) {
		t.Fatalf("expected quoted attribute, got %q", line)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "debug",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logging.WarnWithContext(logger, "tag not classified", "tag_unclassified", logging.String(logging.FieldImpact, "tag dropped"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record[logging.FieldEventType] != "tag_unclassified" {
		t.Fatalf("expected event type, got %v", record)
	}
	if record[logging.FieldErrorHint] == nil {
		t.Fatalf("expected default error hint, got %v", record)
	}
	if record[logging.FieldImpact] != "tag dropped" {
		t.Fatalf("expected caller impact to be kept, got %v", record)
	}
}

func TestErrorWithContextInjectsHint(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logging.ErrorWithContext(logger, "scan failed", "scan_failed", logging.String(logging.FieldPath, "/library"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record["level"] != "ERROR" || record[logging.FieldEventType] != "scan_failed" {
		t.Fatalf("unexpected record %v", record)
	}
	if record[logging.FieldErrorHint] == nil {
		t.Fatalf("expected default error hint, got %v", record)
	}
	if _, ok := record[logging.FieldImpact]; ok {
		t.Fatalf("expected no default impact on errors, got %v", record)
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := logging.WithRunID(context.Background(), "run-123")

	logging.WithContext(ctx, logger).Info("contextual log")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record[logging.FieldRunID] != "run-123" {
		t.Fatalf("expected run id field, got %v", record)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected nop logger to be disabled")
	}
	logging.NewComponentLogger(nil, "x").Error("ignored")
}
