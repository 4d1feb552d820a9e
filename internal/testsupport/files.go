package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTree creates empty files at the given paths relative to root,
// creating parent directories as needed.
func WriteTree(t testing.TB, root string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", path, err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}
