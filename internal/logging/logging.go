// Package logging holds the operational logger for cross. It records what
// the tool is doing (config loading, engine probing) and is separate from
// the user-facing console in internal/shell.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/slint-ui/cross/internal/shell"
)

// NewLogger creates a logger writing to the given writer. The default level
// is WarnLevel so routine operation stays silent.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level: log.WarnLevel,
	})
}

// Configure adjusts the logger to match the resolved console settings:
// Quiet keeps only errors, Verbose opens up debug output, and ColorNever
// drops the logger to a plain ASCII profile.
func Configure(l *log.Logger, v shell.Verbosity, color shell.ColorMode) {
	switch v {
	case shell.Quiet:
		l.SetLevel(log.ErrorLevel)
	case shell.Verbose:
		l.SetLevel(log.DebugLevel)
	default:
		l.SetLevel(log.WarnLevel)
	}

	if color == shell.ColorNever {
		l.SetColorProfile(termenv.Ascii)
	}
}
