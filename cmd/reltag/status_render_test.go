package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"reltag/internal/scan"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Partial", statusWarn, "2", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Partial:", "[WARN] 2")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Classified", statusOK, "3", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	out := renderSummary(scan.Summary{Total: 4, Classified: 1, Partial: 1, Failures: 2, NotRelease: 1, Skipped: 1}, false)
	requireContains(t, out, "== Summary ==")
	requireContains(t, out, "[WARN] 1 (2 unclassified tags)")
	requireContains(t, out, "[OK] 1")
}

func TestOutcomeKind(t *testing.T) {
	cases := map[scan.Status]statusKind{
		scan.StatusClassified: statusOK,
		scan.StatusPartial:    statusWarn,
		scan.StatusSkipped:    statusInfo,
		scan.StatusNotRelease: statusInfo,
	}
	for status, want := range cases {
		if got := outcomeKind(status); got != want {
			t.Fatalf("outcomeKind(%q) = %v, want %v", status, got, want)
		}
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}
