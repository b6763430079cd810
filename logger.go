package lofx

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/lofx/backend"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for lofx and its backends.
// By default lofx produces no log output.
//
// Every diagnostic routed through a Context is also written to this logger:
//   - [slog.LevelDebug]: Trace diagnostics (initialization, version negotiation)
//   - [slog.LevelInfo]: backend lifecycle (window created, GL functions loaded)
//   - [slog.LevelWarn]: Warn diagnostics (unknown uniform, attachment overflow)
//   - [slog.LevelError]: Error diagnostics (link failure, incomplete framebuffer)
//
// Pass nil to restore the silent default. SetLogger is safe for concurrent use.
//
// Example:
//
//	lofx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	backend.SetLogger(l)
}

// Logger returns the current logger used by lofx.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
