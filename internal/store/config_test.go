package store_test

import (
	"path/filepath"
	"testing"

	"github.com/d3ku010/macroo/internal/store"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	repo, err := store.OpenSQLite(filepath.Join(t.TempDir(), "macroo.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer repo.Close()

	if _, found, err := store.GetConfig(repo.DB(), store.ConfigStorageBackend); err != nil || found {
		t.Fatalf("expected unset key, found=%v err=%v", found, err)
	}

	if err := store.SetConfig(repo.DB(), store.ConfigStorageBackend, store.BackendFile); err != nil {
		t.Fatalf("set config: %v", err)
	}
	value, found, err := store.GetConfig(repo.DB(), store.ConfigStorageBackend)
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if !found || value != store.BackendFile {
		t.Fatalf("expected file backend value, got %q found=%v", value, found)
	}

	if err := store.SetConfig(repo.DB(), store.ConfigStorageBackend, store.BackendSQLite); err != nil {
		t.Fatalf("overwrite config: %v", err)
	}
	all, err := store.ListConfig(repo.DB())
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if all[store.ConfigStorageBackend] != store.BackendSQLite {
		t.Fatalf("expected overwritten value, got %+v", all)
	}
}
