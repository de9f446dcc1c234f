// Package interfaces defines core domain contracts.
//
//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

import (
	"fmt"
	"os"
	"strings"
)

// Logger defines the interface for structured logging
type Logger interface {
	// Debug logs debug-level messages
	Debug(msg string, fields ...Field)

	// Warn logs warning messages
	Warn(msg string, fields ...Field)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new Field (convenience function)
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// NoOpLogger is a logger that does nothing (useful as the default)
type NoOpLogger struct{}

// Debug does nothing (no-op implementation)
func (n *NoOpLogger) Debug(_ string, _ ...Field) {}

// Warn does nothing (no-op implementation)
func (n *NoOpLogger) Warn(_ string, _ ...Field) {}

// StderrLogger logs to stderr, one line per message with key=value fields.
// It backs the -debug flag so request traces never mix with command output
// on stdout.
type StderrLogger struct{}

// Debug logs debug-level messages to stderr
func (l *StderrLogger) Debug(msg string, fields ...Field) { l.emit("DEBUG", msg, fields) }

// Warn logs warning messages to stderr
func (l *StderrLogger) Warn(msg string, fields ...Field) { l.emit("WARN", msg, fields) }

func (l *StderrLogger) emit(level, msg string, fields []Field) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", level, msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	fmt.Fprintln(os.Stderr, b.String())
}
