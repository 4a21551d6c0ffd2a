package ids

import (
	"fmt"
	"iter"
	"time"

	"github.com/HolographicTripwire/ids/intmap"
)

// Tracker assigns identifiers to objects and owns the slot each object lives
// in. Objects are handed out as shared *Handle values guarded by a lock per
// object, so unrelated objects can be used concurrently.
//
// The tracker's own table is not synchronized: Put, Adopt, Remove, Flatten
// and FlattenWith must be serialized by the caller, typically by keeping a
// single goroutine in charge of the tracker and sharing only the handles.
// Get and All may run concurrently with each other but not with a mutator.
//
// Identifiers come from the backing map's key counter, the tracker's single
// source of fresh identifiers. A removed identifier is not reused until the
// next Flatten renumbers the live objects.
type Tracker[I Identifier, T Identified[I]] struct {
	slots   intmap.Map[*Handle[T]]
	name    string
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty tracker.
func New[I Identifier, T Identified[I]](optFns ...Option) *Tracker[I, T] {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	return &Tracker[I, T]{
		slots:   intmap.New[*Handle[T]](o.backend, o.capacity),
		name:    o.name,
		logger:  o.logger.WithDomain(o.name),
		metrics: o.metricsCollector,
	}
}

// Get returns the handle of the live object with identifier id.
func (t *Tracker[I, T]) Get(id I) (*Handle[T], bool) {
	k, err := ToIndex(id)
	if err != nil {
		return nil, false
	}
	return t.slots.Get(k)
}

// Put assigns the next identifier to obj, stamps it via SetID and tracks it.
// It returns the identifier and the shared handle.
//
// Put panics with a *Defect when the identifier domain is used up. A panic
// in obj's SetID propagates and leaves the tracker unchanged.
func (t *Tracker[I, T]) Put(obj T) (I, *Handle[T]) {
	h := NewHandle(obj)
	id, err := t.track(h)
	if err != nil {
		// Nobody else can hold a handle created just above.
		raise(&PoisonedError{ID: uint64(t.slots.Next()), Op: "put"})
	}
	t.metrics.RecordPut(nil)
	return id, h
}

// Adopt tracks an existing handle under the next identifier, stamping the
// object it guards.
//
// Adopt fails, leaving the tracker unchanged, with ErrAlreadyTracked when t
// already holds h under its current identifier and with ErrLockPoisoned when
// h is poisoned. Like Put it panics with a *Defect when the domain is used up.
func (t *Tracker[I, T]) Adopt(h *Handle[T]) (I, error) {
	id, err := t.track(h)
	if err != nil {
		err = fmt.Errorf("adopt: %w", err)
		t.logger.LogAdopt(err)
		t.metrics.RecordPut(err)
		return 0, err
	}
	t.metrics.RecordPut(nil)
	return id, nil
}

func (t *Tracker[I, T]) track(h *Handle[T]) (I, error) {
	id, err := FromIndex[I](t.slots.Next())
	if err != nil {
		raise(&ExhaustedError{Domain: t.name, Bits: Bits[I]()})
	}

	g, err := h.Lock()
	if err != nil {
		return 0, err
	}
	defer g.Unlock()

	if k, err := ToIndex(g.Value().ID()); err == nil {
		if cur, ok := t.slots.Get(k); ok && cur == h {
			return 0, ErrAlreadyTracked
		}
	}

	// A panicking SetID poisons h and leaves it untracked.
	g.run(func(v T) { v.SetID(id) })
	t.slots.Add(h)
	return id, nil
}

// Remove stops tracking the object with identifier id and returns its
// handle. The handle stays usable by whoever holds it, but the object is no
// longer reachable through Get.
//
// Removing an object does not update structures that reference id; drop
// such references before the next Flatten, or it will report them as an
// incomplete remap.
func (t *Tracker[I, T]) Remove(id I) (*Handle[T], bool) {
	h, ok := t.Get(id)
	if ok {
		k, _ := ToIndex(id)
		t.slots.Remove(k)
	}
	t.metrics.RecordRemove(ok)
	return h, ok
}

// Len returns the number of live objects.
func (t *Tracker[I, T]) Len() int {
	return t.slots.Len()
}

// Next returns the identifier the next Put will assign. ok is false once the
// domain is used up.
func (t *Tracker[I, T]) Next() (id I, ok bool) {
	id, err := FromIndex[I](t.slots.Next())
	return id, err == nil
}

// All iterates the live objects. Order follows the backend: ascending for
// dense, unspecified for sparse.
func (t *Tracker[I, T]) All() iter.Seq2[I, *Handle[T]] {
	return func(yield func(I, *Handle[T]) bool) {
		for k, h := range t.slots.All() {
			// Every key was issued through FromIndex, so it fits I.
			if !yield(I(k), h) {
				return
			}
		}
	}
}

type stamp[I Identifier, T Identified[I]] struct {
	guard *Guard[T]
	old   I
	id    I
}

// restore puts the old identifier back. A panicking SetID poisons the handle
// and is swallowed so the remaining stamps can still be restored.
func (s stamp[I, T]) restore() {
	restored := false
	defer func() {
		if !restored {
			_ = recover()
		}
	}()

	s.guard.run(func(v T) { v.SetID(s.old) })
	restored = true
}

// Flatten renumbers the live objects contiguously from First, discarding the
// slots left empty by Remove, and returns the old -> new mapping.
//
// Renumbering follows the backend order: ascending identifiers for dense,
// unspecified for sparse. Every object is stamped with its new identifier.
//
// Flatten locks every live handle before changing anything. If one of them is
// poisoned it returns a *PoisonedError and neither the table nor any object
// has been modified. Flatten blocks while another holder has an object
// locked.
//
// If an object's SetID panics, that handle is poisoned, the objects already
// stamped get their old identifiers back and the panic continues with the
// table unchanged.
func (t *Tracker[I, T]) Flatten() (Remapping[I], error) {
	start := time.Now()

	flat, keys := t.slots.Compact()
	reclaimed := t.slots.Next() - flat.Len()

	stamps := make([]stamp[I, T], 0, len(keys))
	defer func() {
		for _, s := range stamps {
			s.guard.Unlock()
		}
	}()

	mapping := make(Remapping[I], len(keys))
	for k, h := range t.slots.All() {
		g, err := h.Lock()
		if err != nil {
			err = &PoisonedError{ID: uint64(k), Op: "flatten"}
			t.logger.WithID(uint64(k)).LogFlatten(len(keys), 0, err)
			t.metrics.RecordFlatten(len(keys), 0, time.Since(start), err)
			return nil, err
		}
		newID := I(keys[k])
		stamps = append(stamps, stamp[I, T]{guard: g, old: I(k), id: newID})
		mapping[I(k)] = newID
	}

	stamped := 0
	defer func() {
		if stamped == len(stamps) {
			return
		}
		for _, s := range stamps[:stamped] {
			s.restore()
		}
	}()
	for _, s := range stamps {
		s.guard.run(func(v T) { v.SetID(s.id) })
		stamped++
	}
	t.slots = flat

	t.logger.LogFlatten(len(keys), reclaimed, nil)
	t.metrics.RecordFlatten(len(keys), reclaimed, time.Since(start), nil)
	return mapping, nil
}

// FlattenWith runs Flatten and then applies the mapping to every store, in
// the order given. If Flatten fails no store is touched.
//
// A store that holds an identifier the mapping does not cover panics with a
// *Defect; see UpdatableStore.
func (t *Tracker[I, T]) FlattenWith(stores ...UpdatableStore[I]) (Remapping[I], error) {
	mapping, err := t.Flatten()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	mapping.Apply(stores...)
	t.logger.LogPropagate(len(stores), len(mapping))
	t.metrics.RecordPropagate(len(stores), time.Since(start))
	return mapping, nil
}
