// Package cli implements the blockfit command-line interface.
//
// The commands load a puzzle file, run the tiling search and print the
// result as an ASCII board, optionally writing PDF, label, DXF and Excel
// outputs. Preferences and named settings profiles live under the config
// directory (~/.blockfit by default).
//
// # Commands
//
// The main commands are:
//   - solve: Tile the target board and print the result
//   - compare: Run the same puzzle under several settings and compare the work done
//   - profile: Save, list, share and delete named settings profiles
//   - config: Show, initialize, back up and restore the configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// one line per placed and removed rectangle. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress reports how long a step took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time since newProgress.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
