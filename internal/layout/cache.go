package layout

import (
	"sync"

	"github.com/alexanderramin/workboard/internal/domain"
)

// Source supplies the orders of one work center together with a revision
// that changes whenever those orders change.
type Source interface {
	Snapshot(workCenterID string) ([]domain.WorkOrder, uint64)
}

// CacheObserver is notified of every lookup.
type CacheObserver func(workCenterID string, hit bool)

// Cache memoizes Pack per work center, recomputing only when the source
// revision for that work center moved since the last lookup.
type Cache struct {
	src      Source
	observer CacheObserver

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	revision   uint64
	placements []Placement
}

func NewCache(src Source, observer CacheObserver) *Cache {
	return &Cache{
		src:      src,
		observer: observer,
		entries:  make(map[string]cacheEntry),
	}
}

// Placements returns the lane assignment for a work center. The returned
// slice must not be modified.
func (c *Cache) Placements(workCenterID string) []Placement {
	orders, rev := c.src.Snapshot(workCenterID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[workCenterID]; ok && e.revision == rev {
		c.notify(workCenterID, true)
		return e.placements
	}
	placements := Pack(orders)
	c.entries[workCenterID] = cacheEntry{revision: rev, placements: placements}
	c.notify(workCenterID, false)
	return placements
}

func (c *Cache) notify(workCenterID string, hit bool) {
	if c.observer != nil {
		c.observer(workCenterID, hit)
	}
}
