package intmap

import "iter"

// Map is an integer-keyed map with an auto-increment key counter.
type Map[V any] interface {
	// Add stores v under the next free key and returns that key.
	Add(v V) int
	// Put stores v under k. If k is at or beyond the counter, the counter
	// moves to k+1. Put panics if k is negative.
	Put(k int, v V)
	// Remove empties slot k. It is a no-op if k is absent.
	Remove(k int)
	// Get returns the value under k.
	Get(k int) (V, bool)
	// Len returns the number of occupied keys.
	Len() int
	// Next returns the key the next Add will use.
	Next() int
	// All iterates occupied keys and their values.
	All() iter.Seq2[int, V]
	// Compact returns a new map holding the live values under keys 0..Len()-1
	// and the mapping from every occupied old key to its new key. The
	// receiver is left untouched.
	Compact() (Map[V], map[int]int)
}

// Backend selects a Map implementation.
type Backend int

const (
	// BackendDense selects Dense.
	BackendDense Backend = iota
	// BackendSparse selects Sparse.
	BackendSparse
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendDense:
		return "dense"
	case BackendSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// New creates an empty map for the given backend. capacity is a sizing hint.
func New[V any](b Backend, capacity int) Map[V] {
	if b == BackendSparse {
		return NewSparse[V](capacity)
	}
	return NewDense[V](capacity)
}

func checkKey(k int) {
	if k < 0 {
		panic("intmap: negative key")
	}
}
