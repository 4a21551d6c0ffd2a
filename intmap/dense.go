package intmap

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// Dense is an index-addressed Map backed by a slice of slots.
// An occupancy bitset records which slots hold a value, so a stored zero
// value is still a present value.
type Dense[V any] struct {
	slots    []V
	occupied *bitset.BitSet
	next     int
}

// NewDense creates an empty Dense map with room for capacity keys.
func NewDense[V any](capacity int) *Dense[V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Dense[V]{
		slots:    make([]V, 0, capacity),
		occupied: bitset.New(uint(capacity)),
	}
}

// Add implements Map.
func (d *Dense[V]) Add(v V) int {
	k := d.next
	d.Put(k, v)
	return k
}

// Put implements Map.
func (d *Dense[V]) Put(k int, v V) {
	checkKey(k)
	if k >= len(d.slots) {
		d.grow(k + 1)
	}
	d.slots[k] = v
	d.occupied.Set(uint(k))
	if k >= d.next {
		d.next = k + 1
	}
}

// grow extends the slot slice to n entries; new slots are empty.
func (d *Dense[V]) grow(n int) {
	if n <= cap(d.slots) {
		d.slots = d.slots[:n]
		return
	}
	newCap := max(n, 2*cap(d.slots))
	grown := make([]V, n, newCap)
	copy(grown, d.slots)
	d.slots = grown
}

// Remove implements Map.
func (d *Dense[V]) Remove(k int) {
	if k < 0 || k >= len(d.slots) {
		return
	}
	var zero V
	d.slots[k] = zero
	d.occupied.Clear(uint(k))
}

// Get implements Map.
func (d *Dense[V]) Get(k int) (V, bool) {
	if k < 0 || k >= len(d.slots) || !d.occupied.Test(uint(k)) {
		var zero V
		return zero, false
	}
	return d.slots[k], true
}

// Len implements Map.
func (d *Dense[V]) Len() int {
	return int(d.occupied.Count())
}

// Next implements Map.
func (d *Dense[V]) Next() int {
	return d.next
}

// All implements Map. Keys are yielded in ascending order.
func (d *Dense[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, ok := d.occupied.NextSet(0); ok; i, ok = d.occupied.NextSet(i + 1) {
			if int(i) >= len(d.slots) {
				return
			}
			if !yield(int(i), d.slots[i]) {
				return
			}
		}
	}
}

// Compact implements Map. Live keys are renumbered in ascending order.
func (d *Dense[V]) Compact() (Map[V], map[int]int) {
	return d.CompactDense()
}

// CompactDense is Compact with the concrete result type.
func (d *Dense[V]) CompactDense() (*Dense[V], map[int]int) {
	n := d.Len()
	flat := NewDense[V](n)
	mapping := make(map[int]int, n)
	for k, v := range d.All() {
		mapping[k] = flat.Add(v)
	}
	return flat, mapping
}
