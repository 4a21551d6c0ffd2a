package testutil

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/HolographicTripwire/ids"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Sample returns k distinct pseudo-random numbers from [0,n) in random order.
// k is clamped to n.
func (r *RNG) Sample(n, k int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	k = min(k, n)
	return r.rand.Perm(n)[:k]
}

// Node is a minimal object implementing ids.Identified.
type Node[I ids.Identifier] struct {
	id    I
	Label string
	Hits  int
}

// NewNode creates a node with the given label.
func NewNode[I ids.Identifier](label string) *Node[I] {
	return &Node[I]{Label: label}
}

// ID implements ids.Identified.
func (n *Node[I]) ID() I { return n.id }

// SetID implements ids.Identified.
func (n *Node[I]) SetID(id I) { n.id = id }

// Fill puts n nodes labelled "n0".."n{n-1}" into tr and returns their
// handles in insertion order.
func Fill[I ids.Identifier](t testing.TB, tr *ids.Tracker[I, *Node[I]], n int) []*ids.Handle[*Node[I]] {
	t.Helper()

	handles := make([]*ids.Handle[*Node[I]], 0, n)
	for i := range n {
		_, h := tr.Put(NewNode[I](fmt.Sprintf("n%d", i)))
		handles = append(handles, h)
	}
	return handles
}

// Label reads the label of the node behind h, failing the test if the
// handle is poisoned.
func Label[I ids.Identifier](t testing.TB, h *ids.Handle[*Node[I]]) string {
	t.Helper()

	var label string
	if err := h.Do(func(n *Node[I]) error {
		label = n.Label
		return nil
	}); err != nil {
		t.Fatalf("read label: %v", err)
	}
	return label
}

// IDOf reads the identifier stamped on the node behind h, failing the test if
// the handle is poisoned.
func IDOf[I ids.Identifier](t testing.TB, h *ids.Handle[*Node[I]]) I {
	t.Helper()

	var id I
	if err := h.Do(func(n *Node[I]) error {
		id = n.ID()
		return nil
	}); err != nil {
		t.Fatalf("read id: %v", err)
	}
	return id
}
