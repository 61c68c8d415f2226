package cli

import (
	"io"
	"log/slog"
)

// newLogger returns a debug logger on stderr when verbose, otherwise a
// logger that discards everything.
func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose || stderr == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
