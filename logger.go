package ids

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the structured logger used by trackers. Records carry the
// tracker's domain name when one was configured with WithName.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs text at info level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NewTextLogger(slog.LevelInfo)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger logs JSON records at or above level to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger logs key=value records at or above level to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // above every real level
	}))
}

// WithDomain tags records with the identifier domain. An empty name returns l.
func (l *Logger) WithDomain(name string) *Logger {
	if name == "" {
		return l
	}
	return &Logger{Logger: l.With("domain", name)}
}

// WithID tags records with the identifier an operation stopped at.
func (l *Logger) WithID(id uint64) *Logger {
	return &Logger{Logger: l.With("id", id)}
}

// LogFlatten records the outcome of a compaction.
func (l *Logger) LogFlatten(live, reclaimed int, err error) {
	if err != nil {
		l.Warn("flatten aborted", "live", live, "error", err)
		return
	}
	l.Debug("flatten completed", "live", live, "reclaimed", reclaimed)
}

// LogPropagate records a remapping pushed to external stores.
func (l *Logger) LogPropagate(stores, remapped int) {
	l.Debug("stores updated", "stores", stores, "remapped", remapped)
}

// LogAdopt records a rejected Adopt. It is silent for a nil err.
func (l *Logger) LogAdopt(err error) {
	if err == nil {
		return
	}
	l.Warn("adopt rejected", "error", err)
}
