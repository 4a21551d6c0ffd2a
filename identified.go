package ids

import "maps"

// Identified is implemented by objects that carry their own identifier.
//
// SetID is reserved for the Tracker that owns the object; other callers
// should treat the identifier as read-only.
type Identified[I Identifier] interface {
	ID() I
	SetID(id I)
}

// UpdatableStore is implemented by any structure that holds identifiers of
// space I and must follow a renumbering of that space.
//
// UpdateIDs receives the complete old -> new mapping and must replace every
// identifier it holds. A mapping that lacks a held identifier is a
// coordination bug between the compacting tracker and its stores; stores
// report it through Remapping.Resolve, which panics.
type UpdatableStore[I Identifier] interface {
	UpdateIDs(mapping Remapping[I])
}

// Remapping maps old identifiers to new ones after a compaction.
type Remapping[I Identifier] map[I]I

// Lookup returns the new identifier for old.
func (m Remapping[I]) Lookup(old I) (I, bool) {
	id, ok := m[old]
	return id, ok
}

// Resolve returns the new identifier for old. It panics with a *Defect
// wrapping an *IncompleteRemapError naming store when old is missing.
func (m Remapping[I]) Resolve(old I, store string) I {
	id, ok := m[old]
	if !ok {
		raise(&IncompleteRemapError{ID: uint64(old), Store: store})
	}
	return id
}

// Clone returns a copy of m.
func (m Remapping[I]) Clone() Remapping[I] {
	return maps.Clone(m)
}

// Apply calls UpdateIDs on every store in order.
func (m Remapping[I]) Apply(stores ...UpdatableStore[I]) {
	for _, s := range stores {
		s.UpdateIDs(m)
	}
}
