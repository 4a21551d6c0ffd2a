// Package intmap provides maps keyed by small non-negative integers.
//
// Every Map carries an auto-increment counter: Add stores a value under the
// next free key, Put stores under an explicit key and pushes the counter past
// it, Remove empties a slot without ever moving the counter back. Keys freed by
// Remove are only reclaimed by Compact, which returns a fresh map holding the
// live values under keys 0..n-1 together with the old -> new key mapping.
//
// # Backends
//
//   - Dense: a slice of slots plus an occupancy bitset. O(1) access, memory
//     proportional to the highest key ever used. Compact walks keys in
//     ascending order, so the renumbering is deterministic.
//   - Sparse: a Go map. Memory proportional to the number of live entries.
//     Compact walks the map in Go's iteration order, which is unspecified;
//     callers must not depend on the relative order of renumbered keys.
//
// Neither backend is safe for concurrent mutation.
package intmap
