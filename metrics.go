package ids

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    putCounter       prometheus.Counter
//	    flattenHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordFlatten(live, reclaimed int, duration time.Duration, err error) {
//	    p.flattenHistogram.Observe(duration.Seconds())
//	    // ... record error state, reclaimed slots, etc.
//	}
type MetricsCollector interface {
	// RecordPut is called after each object is tracked (Put or Adopt).
	// err is nil if successful.
	RecordPut(err error)

	// RecordRemove is called after each remove; found reports whether the
	// identifier was live.
	RecordRemove(found bool)

	// RecordFlatten is called after each compaction. live is the number of
	// objects renumbered, reclaimed the number of empty slots dropped.
	RecordFlatten(live, reclaimed int, duration time.Duration, err error)

	// RecordPropagate is called after a remapping was applied to stores.
	RecordPropagate(stores int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPut(error)                              {}
func (NoopMetricsCollector) RecordRemove(bool)                            {}
func (NoopMetricsCollector) RecordFlatten(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordPropagate(int, time.Duration)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PutCount          atomic.Int64
	PutErrors         atomic.Int64
	RemoveCount       atomic.Int64
	RemoveMisses      atomic.Int64
	FlattenCount      atomic.Int64
	FlattenErrors     atomic.Int64
	FlattenLive       atomic.Int64
	FlattenReclaimed  atomic.Int64
	FlattenTotalNanos atomic.Int64
	PropagateCount    atomic.Int64
	PropagateStores   atomic.Int64
}

// RecordPut implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPut(err error) {
	b.PutCount.Add(1)
	if err != nil {
		b.PutErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(found bool) {
	b.RemoveCount.Add(1)
	if !found {
		b.RemoveMisses.Add(1)
	}
}

// RecordFlatten implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFlatten(live, reclaimed int, duration time.Duration, err error) {
	b.FlattenCount.Add(1)
	b.FlattenTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FlattenErrors.Add(1)
		return
	}
	b.FlattenLive.Add(int64(live))
	b.FlattenReclaimed.Add(int64(reclaimed))
}

// RecordPropagate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPropagate(stores int, duration time.Duration) {
	b.PropagateCount.Add(1)
	b.PropagateStores.Add(int64(stores))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PutCount:         b.PutCount.Load(),
		PutErrors:        b.PutErrors.Load(),
		RemoveCount:      b.RemoveCount.Load(),
		RemoveMisses:     b.RemoveMisses.Load(),
		FlattenCount:     b.FlattenCount.Load(),
		FlattenErrors:    b.FlattenErrors.Load(),
		FlattenLive:      b.FlattenLive.Load(),
		FlattenReclaimed: b.FlattenReclaimed.Load(),
		FlattenAvgNanos:  b.getAvgFlattenNanos(),
		PropagateCount:   b.PropagateCount.Load(),
		PropagateStores:  b.PropagateStores.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFlattenNanos() int64 {
	count := b.FlattenCount.Load()
	if count == 0 {
		return 0
	}
	return b.FlattenTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of metrics from BasicMetricsCollector.
type BasicMetricsStats struct {
	PutCount         int64
	PutErrors        int64
	RemoveCount      int64
	RemoveMisses     int64
	FlattenCount     int64
	FlattenErrors    int64
	FlattenLive      int64
	FlattenReclaimed int64
	FlattenAvgNanos  int64
	PropagateCount   int64
	PropagateStores  int64
}
