package sixelframe

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Reporting every level as disabled
// lets slog return before any attribute is evaluated.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var (
	silent = slog.New(discardHandler{})

	// current is read on every frame operation that logs and replaced
	// by SetLogger, possibly from another goroutine.
	current atomic.Pointer[slog.Logger]
)

func init() {
	current.Store(silent)
}

// SetLogger routes the package's diagnostics to l. Frames log nothing until
// SetLogger is called; SetLogger(nil) silences them again.
//
// Records emitted:
//   - [slog.LevelDebug] "sixelframe: buffer swap" whenever an operation
//     replaces the pixel buffer, with the old and new geometry
//   - [slog.LevelWarn] "sixelframe: release of destroyed frame"
//   - [slog.LevelError] when ConvertToRGB888 meets an unknown pixel format
//
// Example:
//
//	sixelframe.SetLogger(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger frames currently write to. It is never nil.
func Logger() *slog.Logger {
	return current.Load()
}
