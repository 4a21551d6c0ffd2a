package ids

import (
	"iter"
	"maps"
	"sync"
)

// Linker is a one-to-one association between a left identifier space L and
// a right identifier space R, such as objects of one Tracker paired with
// objects of another.
//
// Inserting a pair drops any earlier pair that shared either side, so every
// left identifier is linked to at most one right identifier and vice versa.
// A Linker is safe for concurrent use.
type Linker[L, R Identifier] struct {
	mu      sync.RWMutex
	byLeft  map[L]R
	byRight map[R]L
}

// NewLinker creates an empty linker.
func NewLinker[L, R Identifier]() *Linker[L, R] {
	return &Linker[L, R]{
		byLeft:  make(map[L]R),
		byRight: make(map[R]L),
	}
}

// GetByLeft returns the right identifier linked to left.
func (k *Linker[L, R]) GetByLeft(left L) (R, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	r, ok := k.byLeft[left]
	return r, ok
}

// GetByRight returns the left identifier linked to right.
func (k *Linker[L, R]) GetByRight(right R) (L, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	l, ok := k.byRight[right]
	return l, ok
}

// Insert links left and right, dropping any pair that involved either.
func (k *Linker[L, R]) Insert(left L, right R) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.insert(left, right)
}

func (k *Linker[L, R]) insert(left L, right R) {
	if r, ok := k.byLeft[left]; ok {
		delete(k.byRight, r)
	}
	if l, ok := k.byRight[right]; ok {
		delete(k.byLeft, l)
	}
	k.byLeft[left] = right
	k.byRight[right] = left
}

// DeleteByLeft removes the pair involving left, if any.
func (k *Linker[L, R]) DeleteByLeft(left L) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if r, ok := k.byLeft[left]; ok {
		delete(k.byLeft, left)
		delete(k.byRight, r)
	}
}

// DeleteByRight removes the pair involving right, if any.
func (k *Linker[L, R]) DeleteByRight(right R) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if l, ok := k.byRight[right]; ok {
		delete(k.byRight, right)
		delete(k.byLeft, l)
	}
}

// Put combines Insert and the deletes for optional sides:
//
//	Put(nil, nil)     no-op
//	Put(nil, &r)      DeleteByRight(r)
//	Put(&l, nil)      DeleteByLeft(l)
//	Put(&l, &r)       Insert(l, r)
func (k *Linker[L, R]) Put(left *L, right *R) {
	switch {
	case left == nil && right == nil:
	case left == nil:
		k.DeleteByRight(*right)
	case right == nil:
		k.DeleteByLeft(*left)
	default:
		k.Insert(*left, *right)
	}
}

// Len returns the number of pairs.
func (k *Linker[L, R]) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.byLeft)
}

// All iterates a snapshot of the pairs in unspecified order.
func (k *Linker[L, R]) All() iter.Seq2[L, R] {
	k.mu.RLock()
	pairs := maps.Clone(k.byLeft)
	k.mu.RUnlock()

	return func(yield func(L, R) bool) {
		for l, r := range pairs {
			if !yield(l, r) {
				return
			}
		}
	}
}

// Clear removes every pair.
func (k *Linker[L, R]) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.byLeft = make(map[L]R)
	k.byRight = make(map[R]L)
}

// LeftUpdater returns a view that renumbers the left side when a Tracker of
// space L compacts.
func (k *Linker[L, R]) LeftUpdater() *LeftUpdater[L, R] {
	return &LeftUpdater[L, R]{linker: k}
}

// RightUpdater returns a view that renumbers the right side when a Tracker of
// space R compacts.
func (k *Linker[L, R]) RightUpdater() *RightUpdater[L, R] {
	return &RightUpdater[L, R]{linker: k}
}

// rebuild replaces both indexes with the pairs produced by fn. fn runs under
// the write lock and may panic; the linker is only replaced once every pair
// was produced.
func (k *Linker[L, R]) rebuild(fn func(l L, r R) (L, R)) {
	k.mu.Lock()
	defer k.mu.Unlock()

	next := &Linker[L, R]{
		byLeft:  make(map[L]R, len(k.byLeft)),
		byRight: make(map[R]L, len(k.byRight)),
	}
	for l, r := range k.byLeft {
		next.insert(fn(l, r))
	}
	k.byLeft = next.byLeft
	k.byRight = next.byRight
}

// LeftUpdater is the UpdatableStore view of a Linker's left side.
type LeftUpdater[L, R Identifier] struct {
	linker *Linker[L, R]
}

// UpdateIDs implements UpdatableStore. It panics with a *Defect if the linker
// holds a left identifier that mapping does not cover.
func (u *LeftUpdater[L, R]) UpdateIDs(mapping Remapping[L]) {
	u.linker.rebuild(func(l L, r R) (L, R) {
		return mapping.Resolve(l, "linker left side"), r
	})
}

// RightUpdater is the UpdatableStore view of a Linker's right side.
type RightUpdater[L, R Identifier] struct {
	linker *Linker[L, R]
}

// UpdateIDs implements UpdatableStore. It panics with a *Defect if the linker
// holds a right identifier that mapping does not cover.
func (u *RightUpdater[L, R]) UpdateIDs(mapping Remapping[R]) {
	u.linker.rebuild(func(l L, r R) (L, R) {
		return l, mapping.Resolve(r, "linker right side")
	})
}
