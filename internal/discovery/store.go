package discovery

import (
	"sync/atomic"

	"github.com/klauern/lazyopencode/internal/model"
)

// Store holds the currently published catalog snapshot. The snapshot is
// absent until the first Refresh, replaced atomically by each subsequent
// one, and never mutated in place. Readers never wait on an in-flight pass:
// Load returns whichever snapshot was last published.
type Store struct {
	engine  *Engine
	current atomic.Pointer[model.Catalog]
}

// NewStore creates a store backed by the given engine.
func NewStore(engine *Engine) *Store {
	return &Store{engine: engine}
}

// Load returns the currently published snapshot, or nil if no discovery
// pass has completed yet.
func (s *Store) Load() *model.Catalog {
	return s.current.Load()
}

// Refresh runs a full discovery pass and publishes the result. The swap is
// a single pointer store, so concurrent readers see either the previous
// complete snapshot or the new one, never a partial catalog.
func (s *Store) Refresh() *model.Catalog {
	catalog := s.engine.Discover()
	s.current.Store(&catalog)
	return &catalog
}

// LoadOrRefresh returns the published snapshot, running the first pass if
// none has been published yet.
func (s *Store) LoadOrRefresh() *model.Catalog {
	if cat := s.current.Load(); cat != nil {
		return cat
	}
	return s.Refresh()
}
