package intmap

import "iter"

// Sparse is a hash-addressed Map. Memory is proportional to the number of
// live entries rather than the highest key.
type Sparse[V any] struct {
	entries map[int]V
	next    int
}

// NewSparse creates an empty Sparse map sized for capacity entries.
func NewSparse[V any](capacity int) *Sparse[V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Sparse[V]{
		entries: make(map[int]V, capacity),
	}
}

// Add implements Map.
func (s *Sparse[V]) Add(v V) int {
	k := s.next
	s.Put(k, v)
	return k
}

// Put implements Map.
func (s *Sparse[V]) Put(k int, v V) {
	checkKey(k)
	s.entries[k] = v
	if k >= s.next {
		s.next = k + 1
	}
}

// Remove implements Map.
func (s *Sparse[V]) Remove(k int) {
	delete(s.entries, k)
}

// Get implements Map.
func (s *Sparse[V]) Get(k int) (V, bool) {
	v, ok := s.entries[k]
	return v, ok
}

// Len implements Map.
func (s *Sparse[V]) Len() int {
	return len(s.entries)
}

// Next implements Map.
func (s *Sparse[V]) Next() int {
	return s.next
}

// All implements Map. Iteration order is unspecified.
func (s *Sparse[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for k, v := range s.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Compact implements Map. Live keys are renumbered in map iteration order,
// which is unspecified and may differ between calls.
func (s *Sparse[V]) Compact() (Map[V], map[int]int) {
	return s.CompactSparse()
}

// CompactSparse is Compact with the concrete result type.
func (s *Sparse[V]) CompactSparse() (*Sparse[V], map[int]int) {
	flat := NewSparse[V](len(s.entries))
	mapping := make(map[int]int, len(s.entries))
	for k, v := range s.entries {
		mapping[k] = flat.Add(v)
	}
	return flat, mapping
}
