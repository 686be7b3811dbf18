package discovery

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/klauern/lazyopencode/internal/util"
)

func TestStoreLifecycle(t *testing.T) {
	home := util.CreateTempDir(t)
	project := util.CreateTempDir(t)
	store := NewStore(New(home, project))

	if store.Load() != nil {
		t.Fatal("no snapshot should be published before the first pass")
	}

	first := store.Refresh()
	if first == nil {
		t.Fatal("Refresh should publish a snapshot")
	}
	if store.Load() != first {
		t.Error("Load should return the published snapshot")
	}

	// A new pass replaces the snapshot wholesale.
	util.WriteFile(t, filepath.Join(project, ".opencode", "command", "build.md"), "Build.\n")
	second := store.Refresh()

	if second == first {
		t.Error("Refresh should publish a new snapshot instance")
	}
	if second.Len() != 1 {
		t.Errorf("expected 1 entry in new snapshot, got %d", second.Len())
	}
	if first.Len() != 0 {
		t.Errorf("previous snapshot must not be mutated, got %d entries", first.Len())
	}
}

func TestStoreLoadOrRefresh(t *testing.T) {
	home := util.CreateTempDir(t)
	project := util.CreateTempDir(t)
	util.WriteFile(t, filepath.Join(project, "AGENTS.md"), "# Rules\n")

	store := NewStore(New(home, project))

	cat := store.LoadOrRefresh()
	if cat == nil || cat.Len() != 1 {
		t.Fatalf("expected first pass to run, got %v", cat)
	}
	if store.LoadOrRefresh() != cat {
		t.Error("subsequent calls should reuse the published snapshot")
	}
}

func TestStoreConcurrentReaders(t *testing.T) {
	home := util.CreateTempDir(t)
	project := util.CreateTempDir(t)
	util.WriteFile(t, filepath.Join(project, ".opencode", "command", "a.md"), "A.\n")

	store := NewStore(New(home, project))
	store.Refresh()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if cat := store.Load(); cat == nil || cat.Len() != 1 {
					t.Error("reader observed a missing or partial snapshot")
					return
				}
			}
		}()
	}
	for range 10 {
		store.Refresh()
	}
	wg.Wait()
}
