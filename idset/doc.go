// Package idset provides a compressed set of identifiers that follows
// tracker compaction.
//
// A Set is the natural home for per-identifier flags kept outside the tracked
// objects: dirty markers, selections, pinned objects. Because it implements
// ids.UpdatableStore it can be passed to Tracker.FlattenWith and is
// renumbered together with the tracker:
//
//	dirty := idset.New[NodeID]()
//	dirty.Add(id)
//	...
//	mapping, err := nodes.FlattenWith(dirty, links.LeftUpdater())
//
// Sets are backed by 64-bit Roaring bitmaps, so dense runs of identifiers
// cost a few bits each.
package idset
