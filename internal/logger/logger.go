package logger

import "chorddht/internal/domain"

// Field is a structured key:value log field.
type Field struct {
	Key string
	Val any
}

// Logger is the minimal structured-logging interface used across the node,
// routing table and transport layers.
type Logger interface {
	Named(name string) Logger
	With(fields ...Field) Logger
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// F builds a Field concisely.
func F(key string, val any) Field { return Field{Key: key, Val: val} }

// FNode renders a domain.NodeRef as a structured field.
func FNode(key string, n domain.NodeRef) Field {
	return Field{
		Key: key,
		Val: map[string]any{
			"id":   n.ID.ToHexString(),
			"addr": n.Addr(),
		},
	}
}

// FItem renders a domain.Item as a structured field (key and version only;
// values are omitted from logs).
func FItem(key string, it domain.Item) Field {
	return Field{
		Key: key,
		Val: map[string]any{
			"key":     it.Key,
			"version": it.Version,
		},
	}
}

// NopLogger discards everything; used as the zero-value default before a
// real logger is wired in, and in tests.
type NopLogger struct{}

func (l *NopLogger) Named(name string) Logger          { return l }
func (l *NopLogger) With(fields ...Field) Logger       { return l }
func (l *NopLogger) Debug(msg string, fields ...Field) {}
func (l *NopLogger) Info(msg string, fields ...Field)  {}
func (l *NopLogger) Warn(msg string, fields ...Field)  {}
func (l *NopLogger) Error(msg string, fields ...Field) {}
