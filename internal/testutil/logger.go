package testutil

import (
	"sync"

	"rosterbid/internal/logx"
)

// Entry is one captured log record.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// CapturingLogger records log calls for assertions in tests.
type CapturingLogger struct {
	mu      sync.Mutex
	entries []Entry
	with    []logx.Field
}

// NewCapturingLogger returns an empty CapturingLogger.
func NewCapturingLogger() *CapturingLogger {
	return &CapturingLogger{}
}

func (l *CapturingLogger) log(level, msg string, fields []logx.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	all := make([]logx.Field, 0, len(l.with)+len(fields))
	all = append(all, l.with...)
	all = append(all, fields...)
	l.entries = append(l.entries, Entry{Level: level, Msg: msg, Fields: all})
}

// Debug records a debug entry.
func (l *CapturingLogger) Debug(msg string, fields ...logx.Field) { l.log("debug", msg, fields) }

// Info records an info entry.
func (l *CapturingLogger) Info(msg string, fields ...logx.Field) { l.log("info", msg, fields) }

// Warn records a warn entry.
func (l *CapturingLogger) Warn(msg string, fields ...logx.Field) { l.log("warn", msg, fields) }

// Error records an error entry.
func (l *CapturingLogger) Error(msg string, fields ...logx.Field) { l.log("error", msg, fields) }

// With returns a logger that prefixes every entry with fields. Entries still
// land in the parent's buffer.
func (l *CapturingLogger) With(fields ...logx.Field) logx.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &boundLogger{parent: l, with: append(append([]logx.Field{}, l.with...), fields...)}
}

// Sync is a no-op.
func (l *CapturingLogger) Sync() error { return nil }

// Entries returns a copy of the captured entries.
func (l *CapturingLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recent entry, or a zero Entry when empty.
func (l *CapturingLogger) Last() Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return Entry{}
	}
	return l.entries[len(l.entries)-1]
}

type boundLogger struct {
	parent *CapturingLogger
	with   []logx.Field
}

func (b *boundLogger) log(level, msg string, fields []logx.Field) {
	all := make([]logx.Field, 0, len(b.with)+len(fields))
	all = append(all, b.with...)
	all = append(all, fields...)
	b.parent.mu.Lock()
	defer b.parent.mu.Unlock()
	b.parent.entries = append(b.parent.entries, Entry{Level: level, Msg: msg, Fields: all})
}

func (b *boundLogger) Debug(msg string, fields ...logx.Field) { b.log("debug", msg, fields) }
func (b *boundLogger) Info(msg string, fields ...logx.Field)  { b.log("info", msg, fields) }
func (b *boundLogger) Warn(msg string, fields ...logx.Field)  { b.log("warn", msg, fields) }
func (b *boundLogger) Error(msg string, fields ...logx.Field) { b.log("error", msg, fields) }

func (b *boundLogger) With(fields ...logx.Field) logx.Logger {
	return &boundLogger{parent: b.parent, with: append(append([]logx.Field{}, b.with...), fields...)}
}

func (b *boundLogger) Sync() error { return nil }
