// Package cli implements the ldpcgen command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. Every
// command receives its logger through the command context; --verbose (-v)
// switches it to debug level.
//
// # Commands
//
//   - regular:    Gallager / populate-rows / populate-columns codes
//   - protograph: lift a protograph given inline or as a TOML document
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Log levels accepted by newLogger.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// newLogger creates a logger with timestamp formatting that writes to w and
// filters messages at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with l attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
