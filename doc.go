// Package ids allocates small integer identifiers and keeps registries of
// objects addressed by them.
//
// A Tracker hands out the next identifier of a space to every object it
// stores and wraps the object in a lock-guarded Handle. Removed identifiers
// are not reused; they leave gaps, and Flatten closes them by renumbering the
// survivors densely and returns the old-to-new Remapping. Anything else that
// holds identifiers of the same space implements UpdatableStore and is brought
// along in the same step.
//
// # Quick Start
//
//	type Person struct {
//		id   ids.ID32
//		Name string
//	}
//
//	func (p *Person) ID() ids.ID32      { return p.id }
//	func (p *Person) SetID(id ids.ID32) { p.id = id }
//
//	people := ids.New[ids.ID32, *Person]()
//	alice, _ := people.Put(&Person{Name: "alice"})
//	bob, _ := people.Put(&Person{Name: "bob"})
//
//	people.Remove(alice)
//	mapping, err := people.Flatten() // mapping[bob] == 0
//
// # Identifier Spaces
//
// Any unsigned integer type satisfies Identifier. Declaring a distinct type per
// space keeps identifiers of unrelated registries from being mixed:
//
//	type PersonID uint32
//	type GroupID uint16
//
// Conversions to and from slice indices are checked with FromIndex and ToIndex.
// Running out of identifiers is a program defect and panics with a *Defect.
//
// # Linking Spaces
//
// A Linker is a bijection between two identifier spaces. Its LeftUpdater and
// RightUpdater views let each side follow its own Tracker:
//
//	links := ids.NewLinker[PersonID, GroupID]()
//	links.Insert(pid, gid)
//	people.FlattenWith(links.LeftUpdater())
//	groups.FlattenWith(links.RightUpdater())
//
// # Error Handling
//
// Recoverable conditions are returned as errors (*RangeError, *PoisonedError)
// and match their sentinels with errors.Is. Broken invariants panic with a
// *Defect wrapping *ExhaustedError or *IncompleteRemapError.
//
// # Backends
//
// Trackers store handles in an intmap.Map. The dense backend compacts in
// ascending key order; the sparse backend suits spaces with few live entries
// spread across a large range:
//
//	ids.New[PersonID, *Person](ids.WithBackend(intmap.BackendSparse))
package ids
