package testsupport

import (
	"testing"

	"reltag/internal/catalog"
	"reltag/internal/config"
)

// MustOpenCatalog opens the config's catalog for writing and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
