package ids

import (
	"sync"
	"sync/atomic"
)

// Handle is a shared, lock-guarded reference to a tracked object.
//
// Every holder of the same *Handle sees the same object. A Tracker owns the
// slot a handle lives in; removing the slot does not invalidate handles that
// other holders still reference.
//
// A handle becomes poisoned when a holder panics inside Do, or calls
// Guard.Poison, while holding the lock. Later attempts to lock a poisoned
// handle fail with ErrLockPoisoned until ClearPoison is called.
type Handle[T any] struct {
	mu       sync.Mutex
	poisoned atomic.Bool
	value    T
}

// NewHandle wraps v in a new handle.
func NewHandle[T any](v T) *Handle[T] {
	return &Handle[T]{value: v}
}

// Lock acquires exclusive access. On a poisoned handle the lock is released
// again and ErrLockPoisoned is returned.
func (h *Handle[T]) Lock() (*Guard[T], error) {
	h.mu.Lock()
	if h.poisoned.Load() {
		h.mu.Unlock()
		return nil, ErrLockPoisoned
	}
	return &Guard[T]{h: h}, nil
}

// Do runs fn with exclusive access to the object and returns its error.
// If fn panics the handle is poisoned before the panic continues.
func (h *Handle[T]) Do(fn func(v T) error) error {
	g, err := h.Lock()
	if err != nil {
		return err
	}
	defer g.Unlock()

	g.run(func(v T) { err = fn(v) })
	return err
}

// Poisoned reports whether the handle is poisoned.
func (h *Handle[T]) Poisoned() bool {
	return h.poisoned.Load()
}

// ClearPoison marks the object as consistent again. Call it only after
// checking or repairing the object.
func (h *Handle[T]) ClearPoison() {
	h.poisoned.Store(false)
}

// Guard is exclusive access to a handle's object.
type Guard[T any] struct {
	h        *Handle[T]
	released bool
}

// Value returns the guarded object.
func (g *Guard[T]) Value() T {
	return g.h.value
}

// Poison marks the handle poisoned; the guard still has to be unlocked.
func (g *Guard[T]) Poison() {
	g.h.poisoned.Store(true)
}

// Unlock releases the lock. Calling it more than once is a no-op.
func (g *Guard[T]) Unlock() {
	if g.released {
		return
	}
	g.released = true
	g.h.mu.Unlock()
}

// run calls fn with the guarded object and poisons the handle if fn panics.
// The panic continues; the guard stays locked.
func (g *Guard[T]) run(fn func(v T)) {
	completed := false
	defer func() {
		if !completed {
			g.Poison()
		}
	}()

	fn(g.h.value)
	completed = true
}
