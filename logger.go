package colorbook

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so disabled call
// sites never build their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is read by the engine goroutine and may be swapped from any other.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes the engine's and the gallery's records to l.
// The default is silence; nil restores it.
//
// Records, all with a "colorbook: " or "gallery: " message prefix:
//   - Debug "flood fill" (x, y, pixels) and "stroke committed" (points,
//     width, color, damage) once per pointer gesture
//   - Info "surface resized", "template applied" (scale, rect, interp) and
//     "drawing saved" (file, format, id)
//   - Warn "resize rejected" and "brush width rejected" or "pencil width
//     rejected" when a setter refuses its argument
//
// The colorbook command installs a text handler on stderr, at Debug with -v:
//
//	colorbook.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger. The gallery package logs
// through it too.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
