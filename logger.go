package rive

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record; it is the logger in effect until a host
// installs its own.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger installs l for the boundary packages (host, scene, bridge,
// scenefile and the gg host). A nil l turns logging off again.
//
// Messages by level:
//   - [slog.LevelDebug]: handle releases, decode failures, sub-scene changes
//   - [slog.LevelInfo]: a file was imported
//   - [slog.LevelWarn]: a handle was released more times than referenced
//
// A host that wants everything on stderr:
//
//	rive.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the installed logger. It never returns nil.
func Logger() *slog.Logger { return current.Load() }
