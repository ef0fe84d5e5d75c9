package gui

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so attributes are
// never evaluated.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

var logger atomic.Pointer[slog.Logger]

func init() { logger.Store(silent) }

// SetLogger sets the logger used by screens created afterwards without
// WithLogger, and by the widgets package. Nil restores the default, which
// discards everything. It is safe to call while frames are running.
//
// Levels:
//   - [slog.LevelDebug]: one record per composited frame (tasks, draws, damaged area)
//   - [slog.LevelInfo]: screen start, stop and resize
//   - [slog.LevelWarn]: presenter and font failures
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger { return logger.Load() }
