package scan_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"reltag/internal/scan"
)

func TestWatchClassifiesArrivals(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	arrivals := make(chan scan.Outcome, 16)
	done := make(chan error, 1)
	s := &scan.Scanner{}
	go func() {
		done <- s.Watch(ctx, dir, func(o scan.Outcome) { arrivals <- o })
	}()

	// The watcher registers asynchronously; keep dropping new files until one is seen.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case o := <-arrivals:
			if o.Status != scan.StatusClassified {
				t.Fatalf("unexpected outcome %+v", o)
			}
			if filepath.Dir(o.Path) != dir {
				t.Fatalf("unexpected path %q", o.Path)
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("Watch returned %v", err)
			}
			return
		case err := <-done:
			t.Fatalf("watch exited early: %v", err)
		case <-deadline:
			t.Fatal("timed out waiting for watch event")
		case <-ticker.C:
			name := fmt.Sprintf("[FFF] Show - %02d [1080p].mkv", i+1)
			if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
		}
	}
}

func TestWatchRejectsMissingDir(t *testing.T) {
	s := &scan.Scanner{}
	if err := s.Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), func(scan.Outcome) {}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
