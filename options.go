package ids

import (
	"log/slog"

	"github.com/HolographicTripwire/ids/intmap"
)

type options struct {
	backend          intmap.Backend
	capacity         int
	name             string
	metricsCollector MetricsCollector
	logger           *Logger
}

func defaultOptions() options {
	return options{
		backend:          intmap.BackendDense,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

// Option configures a Tracker.
type Option func(*options)

// WithBackend selects the storage backend of the tracker.
//
// Recommended values:
//   - intmap.BackendDense: identifiers stay nearly contiguous (default).
//     Compaction renumbers in ascending identifier order.
//   - intmap.BackendSparse: many removals between compactions. Compaction
//     order is unspecified.
func WithBackend(b intmap.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithCapacity pre-sizes the backend for n objects.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithName labels the tracker in log output and exhaustion reports.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &ids.BasicMetricsCollector{}
//	tr := ids.New[NodeID, *Node](ids.WithMetricsCollector(metrics))
//	// ... use tr ...
//	stats := metrics.GetStats()
//	fmt.Printf("Puts: %d, Reclaimed: %d\n", stats.PutCount, stats.FlattenReclaimed)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := ids.NewJSONLogger(slog.LevelDebug)
//	tr := ids.New[NodeID, *Node](ids.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
