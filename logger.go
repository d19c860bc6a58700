package isofield

import (
	"log/slog"

	"github.com/katalvlaran/isofield/internal/logx"
)

// SetLogger configures the logger for isofield and all its subpackages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Everything is logged at [slog.LevelDebug]: grid rebuilds, resampling and
// per-threshold extraction counts.
//
//	isofield.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) { logx.Set(l) }

// Logger returns the logger currently in use.
func Logger() *slog.Logger { return logx.Logger() }
