// Package testutil provides testing utilities for ids.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for removal patterns, a minimal
// identified object and helpers for filling trackers.
//
// # Random Removal Patterns
//
//	rng := testutil.NewRNG(seed)
//	for _, k := range rng.Sample(100, 30) {
//	    tr.Remove(NodeID(k))
//	}
//
// # Identified Objects
//
//	tr := ids.New[NodeID, *testutil.Node[NodeID]]()
//	handles := testutil.Fill(t, tr, 10) // labels "n0".."n9"
package testutil
