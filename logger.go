package paint

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so callers never build
// the attributes of a disabled record.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes the log output of paint and its internal packages to l.
// Nothing is logged until SetLogger is called; a nil l silences paint again.
//
// paint logs at two levels:
//   - [slog.LevelDebug]: for a contour fill, one record for the outer trace
//     (steps, crossings) and one for the match (crossings, obstacles, spans);
//     for every fill, one record on commit (mode, seed, spans, pixels)
//   - [slog.LevelWarn]: one record per refused fill: a seed outside the
//     canvas, a pattern fill without a pattern, or a commit after a resize
//
// To see everything:
//
//	paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger paint writes to. It is safe for concurrent use.
func Logger() *slog.Logger { return current.Load() }
