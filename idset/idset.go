package idset

import (
	"iter"
	"sync"

	"github.com/HolographicTripwire/ids"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Set is a concurrency-safe set of identifiers of space I.
type Set[I ids.Identifier] struct {
	mu sync.RWMutex
	rb *roaring64.Bitmap
}

// New creates an empty set holding ids.
func New[I ids.Identifier](members ...I) *Set[I] {
	s := &Set[I]{rb: roaring64.New()}
	for _, id := range members {
		s.rb.Add(uint64(id))
	}
	return s
}

// Add inserts id. It reports whether id was absent.
func (s *Set[I]) Add(id I) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rb.CheckedAdd(uint64(id))
}

// Remove deletes id. It reports whether id was present.
func (s *Set[I]) Remove(id I) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rb.CheckedRemove(uint64(id))
}

// Contains reports whether id is in the set.
func (s *Set[I]) Contains(id I) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rb.Contains(uint64(id))
}

// Len returns the number of identifiers in the set.
func (s *Set[I]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int(s.rb.GetCardinality())
}

// All iterates a snapshot of the set in ascending order.
func (s *Set[I]) All() iter.Seq[I] {
	s.mu.RLock()
	members := s.rb.ToArray()
	s.mu.RUnlock()

	return func(yield func(I) bool) {
		for _, v := range members {
			if !yield(I(v)) {
				return
			}
		}
	}
}

// Clear removes every identifier.
func (s *Set[I]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rb.Clear()
}

// UpdateIDs implements ids.UpdatableStore. Every member is replaced by its
// new identifier; a member the mapping does not cover panics with an
// *ids.Defect and leaves the set unchanged.
func (s *Set[I]) UpdateIDs(mapping ids.Remapping[I]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := roaring64.New()
	it := s.rb.Iterator()
	for it.HasNext() {
		old := I(it.Next())
		next.Add(uint64(mapping.Resolve(old, "idset")))
	}
	s.rb = next
}
