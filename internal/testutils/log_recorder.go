package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is a captured log record: its level, message and attributes.
type LogEntry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogRecorder is a memory-backed slog.Handler that records every entry at
// or above its level. Loggers derived with With share the same recording.
type LogRecorder struct {
	level slog.Leveler
	attrs []slog.Attr
	sink  *logSink
}

type logSink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogRecorder creates a recorder that keeps entries at or above level.
func NewLogRecorder(level slog.Leveler) *LogRecorder {
	return &LogRecorder{level: level, sink: &logSink{}}
}

// Logger returns a logger writing to r.
func (r *LogRecorder) Logger() *slog.Logger {
	return slog.New(r)
}

// Enabled implements slog.Handler.
func (r *LogRecorder) Enabled(_ context.Context, level slog.Level) bool {
	return level >= r.level.Level()
}

// Handle implements slog.Handler.
func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	entry := LogEntry{
		Level:   rec.Level,
		Message: rec.Message,
		Attrs:   make(map[string]any, len(r.attrs)+rec.NumAttrs()),
	}
	for _, a := range r.attrs {
		entry.Attrs[a.Key] = a.Value.Any()
	}
	rec.Attrs(func(a slog.Attr) bool {
		entry.Attrs[a.Key] = a.Value.Any()
		return true
	})

	r.sink.mu.Lock()
	r.sink.entries = append(r.sink.entries, entry)
	r.sink.mu.Unlock()
	return nil
}

// WithAttrs implements slog.Handler.
func (r *LogRecorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(r.attrs)+len(attrs))
	merged = append(merged, r.attrs...)
	merged = append(merged, attrs...)
	return &LogRecorder{level: r.level, attrs: merged, sink: r.sink}
}

// WithGroup implements slog.Handler. Groups are flattened.
func (r *LogRecorder) WithGroup(string) slog.Handler {
	return r
}

// Entries returns a copy of the captured entries.
func (r *LogRecorder) Entries() []LogEntry {
	r.sink.mu.Lock()
	defer r.sink.mu.Unlock()

	out := make([]LogEntry, len(r.sink.entries))
	copy(out, r.sink.entries)
	return out
}
