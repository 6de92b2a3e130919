// Package logging builds the charmbracelet/log loggers shared by the server
// and the CLI and carries them through context.Context.
package logging

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// New creates a logger that writes to w with timestamps, filtering below
// the named level.  Unknown level names fall back to info.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           lvl,
	})
}

// NewJSON is New with JSON output, used by the server outside dev.
func NewJSON(w io.Writer, level string) *log.Logger {
	l := New(w, level)
	l.SetFormatter(log.JSONFormatter)
	return l
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

type ctxKey struct{}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger attached to ctx, or a discarding logger.
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok && l != nil {
		return l
	}
	return Discard()
}
