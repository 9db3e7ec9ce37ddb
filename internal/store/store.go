// Package store holds the authoritative in-memory set of work orders for one
// board session, grouped by work center.
package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/alexanderramin/workboard/internal/domain"
)

// Store is safe for concurrent use. Every operation runs under one lock, so
// a read that follows a write observes it.
type Store struct {
	mu        sync.RWMutex
	orders    []domain.WorkOrder
	index     map[string]int
	centers   []domain.WorkCenter
	guard     Guard
	revision  uint64
	revisions map[string]uint64
}

// Option configures a Store at construction.
type Option func(*Store)

// WithWorkCenters registers the work centers shown on the board.
func WithWorkCenters(centers ...domain.WorkCenter) Option {
	return func(s *Store) {
		s.centers = append(s.centers, centers...)
	}
}

// WithSeed preloads work orders. Seed orders bypass the guard; duplicate IDs
// keep the first occurrence.
func WithSeed(orders ...domain.WorkOrder) Option {
	return func(s *Store) {
		for _, o := range orders {
			if _, exists := s.index[o.ID]; exists {
				continue
			}
			s.append(o)
		}
	}
}

// WithGuard enables store-enforced validation on Insert and Update.
func WithGuard(g Guard) Option {
	return func(s *Store) {
		s.guard = g
	}
}

// New creates a Store.
func New(opts ...Option) *Store {
	s := &Store{
		index:     make(map[string]int),
		revisions: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert adds o as given; Get returns the same field values. Overlap is
// judged on calendar dates. It fails with domain.ErrDuplicateID when the ID
// is taken, or with the guard's error in strict mode; the store is unchanged
// on failure.
func (s *Store) Insert(o domain.WorkOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[o.ID]; exists {
		return fmt.Errorf("inserting work order %s: %w", o.ID, domain.ErrDuplicateID)
	}
	if s.guard != nil {
		if err := s.guard.Check(s.forResource(o.WorkCenterID, o.ID), o); err != nil {
			return err
		}
	}
	s.append(o)
	s.touch(o.WorkCenterID)
	return nil
}

// Update replaces the fields present in p on the order with the given ID.
// An empty patch leaves the order and the revisions untouched.
func (s *Store) Update(id string, p domain.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("updating work order %s: %w", id, domain.ErrNotFound)
	}
	if p.IsEmpty() {
		return nil
	}
	prev := s.orders[i]
	next := p.Apply(prev)
	if s.guard != nil {
		if err := s.guard.Check(s.forResource(next.WorkCenterID, id), next); err != nil {
			return err
		}
	}
	s.orders[i] = next
	s.touch(prev.WorkCenterID)
	if next.WorkCenterID != prev.WorkCenterID {
		s.touch(next.WorkCenterID)
	}
	return nil
}

// Delete removes the order with the given ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("deleting work order %s: %w", id, domain.ErrNotFound)
	}
	removed := s.orders[i]
	s.orders = slices.Delete(s.orders, i, i+1)
	delete(s.index, id)
	for j := i; j < len(s.orders); j++ {
		s.index[s.orders[j].ID] = j
	}
	s.touch(removed.WorkCenterID)
	return nil
}

func (s *Store) Get(id string) (domain.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.WorkOrder{}, fmt.Errorf("work order %s: %w", id, domain.ErrNotFound)
	}
	return s.orders[i], nil
}

// All returns a copy of every order in insertion order.
func (s *Store) All() []domain.WorkOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.orders)
}

// AllForResource returns a snapshot of the orders booked on a work center.
// Callers must not rely on the order of the result.
func (s *Store) AllForResource(workCenterID string) []domain.WorkOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forResource(workCenterID, "")
}

// Snapshot returns the orders of one work center together with that work
// center's revision, read atomically.
func (s *Store) Snapshot(workCenterID string) ([]domain.WorkOrder, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forResource(workCenterID, ""), s.revisions[workCenterID]
}

// HasOverlap reports whether any order on the work center, other than
// excludeID, shares a day with [start, end]. It never blocks a mutation.
func (s *Store) HasOverlap(workCenterID string, start, end time.Time, excludeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.WorkCenterID == workCenterID && o.ID != excludeID && domain.SpanOverlaps(start, end, o) {
			return true
		}
	}
	return false
}

// Conflicts is HasOverlap returning the offending orders.
func (s *Store) Conflicts(workCenterID string, start, end time.Time, excludeID string) []domain.WorkOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.WorkOrder
	for _, o := range s.orders {
		if o.WorkCenterID == workCenterID && o.ID != excludeID && domain.SpanOverlaps(start, end, o) {
			out = append(out, o)
		}
	}
	return out
}

// Revision increases by one on every successful mutation.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Store) WorkCenters() []domain.WorkCenter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.centers)
}

func (s *Store) WorkCenter(id string) (domain.WorkCenter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.centers {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.WorkCenter{}, fmt.Errorf("work center %s: %w", id, domain.ErrNotFound)
}

// forResource must be called with the lock held.
func (s *Store) forResource(workCenterID, excludeID string) []domain.WorkOrder {
	out := make([]domain.WorkOrder, 0)
	for _, o := range s.orders {
		if o.WorkCenterID == workCenterID && o.ID != excludeID {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) append(o domain.WorkOrder) {
	s.index[o.ID] = len(s.orders)
	s.orders = append(s.orders, o)
}

func (s *Store) touch(workCenterID string) {
	s.revision++
	s.revisions[workCenterID] = s.revision
}
