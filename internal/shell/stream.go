package shell

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Stream pairs a writer with the two capability queries the shell needs:
// whether the destination is an interactive terminal and whether it accepts
// ANSI color. Both are functions rather than cached booleans because a
// stream's capability can change with run-time redirection; ColorAuto
// re-queries them on every write.
type Stream struct {
	w             io.Writer
	isTerminal    func() bool
	supportsColor func() bool
}

// NewStream builds a stream with explicit capability queries. Tests use
// this to stand in fake terminals with controlled capabilities.
func NewStream(w io.Writer, isTerminal, supportsColor func() bool) *Stream {
	if isTerminal == nil {
		isTerminal = func() bool { return false }
	}
	if supportsColor == nil {
		supportsColor = func() bool { return false }
	}
	return &Stream{w: w, isTerminal: isTerminal, supportsColor: supportsColor}
}

// Stdout returns a stream for the process standard output.
func Stdout() *Stream {
	return fileStream(os.Stdout)
}

// Stderr returns a stream for the process standard error.
func Stderr() *Stream {
	return fileStream(os.Stderr)
}

func fileStream(f *os.File) *Stream {
	return &Stream{
		w: f,
		isTerminal: func() bool {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		},
		supportsColor: func() bool {
			return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
		},
	}
}

func (s *Stream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// IsTerminal reports whether the stream is an interactive terminal.
func (s *Stream) IsTerminal() bool {
	return s.isTerminal()
}

// SupportsColor reports whether the stream currently accepts ANSI color.
func (s *Stream) SupportsColor() bool {
	return s.supportsColor()
}

// Flush forces any buffering in the underlying writer out to the
// destination. Unbuffered writers are a no-op.
func (s *Stream) Flush() error {
	type flusher interface{ Flush() error }
	if f, ok := s.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
