// Package cli implements the lvmetro command-line interface.
//
// Commands load a network description (YAML or TOML, see package seed),
// build the subway graph and answer queries against it:
//   - route: shortest route and transfer plan between two stations
//   - stations: list stations, optionally on one line
//   - lines: list the lines of the network
//   - nearest: stations closest to a coordinate
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger.
//
// Output goes to w, which is the command's stderr so that stdout carries
// only query results and stays pipeable. Timestamps use "HH:MM:SS.ms"
// (e.g. "14:32:01.45"); messages below level are dropped. The root command
// picks InfoLevel, or DebugLevel under --verbose.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures one step of a command, such as loading the network,
// and reports it once the step completes.
//
// A progress is used by the goroutine that created it; it holds no lock.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock for a step reported through l.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done reports msg at debug level with the elapsed time, rounded to the
// millisecond, as a structured "elapsed" field. Extra key/value pairs in
// kv are appended after it:
//
//	14:32:01.45 DEBU network loaded elapsed=3ms stations=5
func (p *progress) done(msg string, kv ...interface{}) {
	fields := append([]interface{}{"elapsed", time.Since(p.start).Round(time.Millisecond)}, kv...)
	p.logger.Debug(msg, fields...)
}

// ctxKey keys values this package stores in a context.Context.
type ctxKey int

// loggerKey is where the command logger lives in the context.
const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l. The root command installs
// the logger in PersistentPreRun, so every subcommand's cmd.Context() has one.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached with withLogger. Contexts
// that never passed through the root command, such as a bare
// context.Background() in tests, get log.Default() so callers never need a
// nil check.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
