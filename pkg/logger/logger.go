// Package logger provides logging functionality for gitclone.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

type noopLogger struct{}

// NewNoopLogger creates a logger that discards everything.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger writes plain lines to an output stream.
type defaultLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewDefaultLogger creates a logger writing plain lines to stdout.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout)
}

// NewWriterLogger creates a logger writing plain lines to w.
func NewWriterLogger(w io.Writer) Logger {
	return &defaultLogger{out: w}
}

// Logf writes a formatted line with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, format+"\n", args...)
}

// verboseLogger emits debug records through log/slog.
type verboseLogger struct {
	logger *slog.Logger
}

// NewVerboseLogger creates a debug level logger writing slog text records to stderr.
func NewVerboseLogger() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// NewSlogLogger wraps an existing slog.Logger.
func NewSlogLogger(l *slog.Logger) Logger {
	return &verboseLogger{logger: l}
}

func (v *verboseLogger) Logf(format string, args ...interface{}) {
	v.logger.Debug(fmt.Sprintf(format, args...))
}
