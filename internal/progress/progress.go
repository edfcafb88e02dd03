// Package progress renders an in-place progress line on the shell's
// secondary stream. It is the writing side of the shell's erase protocol:
// every update flags the stream so the next real message overwrites the
// unterminated line instead of trailing after it.
package progress

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"

	"github.com/slint-ui/cross/internal/shell"
)

// Line is a single reusable in-place progress line.
type Line struct {
	sh    *shell.Shell
	width func() int
}

// New creates a progress line bound to the given shell.
func New(sh *shell.Shell) *Line {
	return &Line{sh: sh, width: terminalWidth}
}

// Update rewrites the progress line with message, truncated to the terminal
// width. Updates are skipped when the shell is quiet or the secondary
// stream is not a terminal, so pipes never see partial lines.
func (l *Line) Update(message string) error {
	if l.sh.Verbosity() == shell.Quiet {
		return nil
	}
	st := l.sh.Secondary()
	if !st.IsTerminal() {
		return nil
	}

	if _, err := io.WriteString(st, "\r\x1b[K"+truncate(message, l.width()-1)); err != nil {
		return err
	}
	l.sh.MarkSecondaryErase()
	return nil
}

// Done replaces the progress line with a final terminated status line. The
// shell erases the pending line as part of the write.
func (l *Line) Done(message string) error {
	return l.sh.Status(message)
}

// Fail replaces the progress line with an error status. Unlike Done this is
// never suppressed by verbosity.
func (l *Line) Fail(message string) error {
	return l.sh.Error(message)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// terminalWidth returns the current width of the secondary stream's
// terminal, or 80 as a fallback.
func terminalWidth() int {
	w, _, err := term.GetSize(os.Stderr.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
