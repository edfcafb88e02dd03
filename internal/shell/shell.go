// Package shell is the user-facing console layer of cross. It resolves the
// --verbose/--quiet/--color flags into a reporting policy, routes messages
// between the two process streams, and keeps an in-place progress line from
// corrupting whatever is printed next. It is distinct from operational
// logging (see internal/logging).
package shell

import (
	"io"
	"os"
	"strings"
)

// tag prefixes every status label so diagnostics stay attributable to cross
// even when interleaved with other programs' output.
const tag = "[cross]"

// eraseLine is the ANSI Erase in Line sequence, written raw with no newline.
const eraseLine = "\x1b[K"

// exitConflict is the status used when --verbose and --quiet are both set.
const exitConflict = 101

// osExit is the single seam through which the fatal paths terminate the
// process. Tests substitute it to observe the exit code.
var osExit = os.Exit

// Shell owns the resolved color and verbosity settings plus the per-stream
// pending-erase flags. One shell serves one logical thread of control;
// concurrent writers must serialize access externally, since the flags and
// the multi-part styled writes are not atomic.
type Shell struct {
	color     ColorMode
	verbosity Verbosity

	out *Stream // primary, conventionally stdout
	err *Stream // secondary, conventionally stderr

	outNeedsErase bool
	errNeedsErase bool
}

// New creates a shell with the given settings, writing to the process
// standard streams.
func New(color ColorMode, verbosity Verbosity) *Shell {
	return &Shell{color: color, verbosity: verbosity, out: Stdout(), err: Stderr()}
}

// Default creates a shell at ColorAuto and Normal verbosity.
func Default() *Shell {
	return New(ColorAuto, Normal)
}

// FromColor creates a shell with the given color mode at Normal verbosity.
func FromColor(color ColorMode) *Shell {
	return New(color, Normal)
}

// FromVerbosity creates a shell at ColorAuto with the given verbosity.
func FromVerbosity(verbosity Verbosity) *Shell {
	return New(ColorAuto, verbosity)
}

// FromFlags resolves the raw startup flags into a shell. A malformed color
// value is returned to the caller; the verbose+quiet contradiction
// terminates the process from inside ResolveVerbosity.
func FromFlags(verbose, quiet bool, color *string) (*Shell, error) {
	mode, err := ResolveColorMode(color)
	if err != nil {
		return nil, err
	}
	return New(mode, ResolveVerbosity(mode, verbose, quiet)), nil
}

// ColorMode returns the resolved color mode.
func (s *Shell) ColorMode() ColorMode {
	return s.color
}

// Verbosity returns the current verbosity level.
func (s *Shell) Verbosity() Verbosity {
	return s.verbosity
}

// SetStreams replaces the primary and secondary streams. Tests use this to
// capture output through fakes with controlled capabilities.
func (s *Shell) SetStreams(primary, secondary *Stream) {
	if primary != nil {
		s.out = primary
	}
	if secondary != nil {
		s.err = secondary
	}
}

// Primary returns the primary (program output) stream.
func (s *Shell) Primary() *Stream {
	return s.out
}

// Secondary returns the secondary (diagnostic) stream.
func (s *Shell) Secondary() *Stream {
	return s.err
}

// MarkPrimaryErase records that an unterminated in-place line is pending on
// the primary stream. The next message written there erases it first.
func (s *Shell) MarkPrimaryErase() {
	s.outNeedsErase = true
}

// MarkSecondaryErase records a pending in-place line on the secondary
// stream.
func (s *Shell) MarkSecondaryErase() {
	s.errNeedsErase = true
}

func (s *Shell) eraseFlag(st *Stream) *bool {
	if st == s.out {
		return &s.outNeedsErase
	}
	return &s.errNeedsErase
}

// eraseIfNeeded clears a pending in-place line on st. The flag is reset
// only once the erase sequence has been written.
func (s *Shell) eraseIfNeeded(st *Stream) error {
	flag := s.eraseFlag(st)
	if !*flag {
		return nil
	}
	if _, err := io.WriteString(st, eraseLine); err != nil {
		return err
	}
	*flag = false
	return nil
}

// statusLine writes "<tag> <label>: <body>\n" to st with the label and
// colon in bold and the label in the given color. A nil body leaves the
// line open with a trailing space so the caller can continue it.
func (s *Shell) statusLine(st *Stream, label string, color attr, body *string) error {
	if err := s.eraseIfNeeded(st); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(s.paint(st, tag+" "+label, attrBold, color))
	b.WriteString(s.paint(st, ":", attrBold))
	if body == nil {
		b.WriteString(" ")
	} else {
		b.WriteString(" " + *body + "\n")
	}

	_, err := io.WriteString(st, b.String())
	return err
}

// plainLine writes message with a trailing newline, erasing any pending
// in-place line on st first.
func (s *Shell) plainLine(st *Stream, message string) error {
	if err := s.eraseIfNeeded(st); err != nil {
		return err
	}
	_, err := io.WriteString(st, message+"\n")
	return err
}

// Error writes a red "error" status to the secondary stream. It is never
// suppressed by verbosity.
func (s *Shell) Error(message string) error {
	return s.statusLine(s.err, "error", attrRed, &message)
}

// Warn writes a yellow "warning" status to the secondary stream.
// Suppressed at Quiet.
func (s *Shell) Warn(message string) error {
	if s.verbosity == Quiet {
		return nil
	}
	return s.statusLine(s.err, "warning", attrYellow, &message)
}

// Note writes a cyan "note" status to the secondary stream. Suppressed at
// Quiet.
func (s *Shell) Note(message string) error {
	if s.verbosity == Quiet {
		return nil
	}
	return s.statusLine(s.err, "note", attrCyan, &message)
}

// Status writes a plain unlabeled line to the secondary stream. Suppressed
// at Quiet.
func (s *Shell) Status(message string) error {
	if s.verbosity == Quiet {
		return nil
	}
	return s.plainLine(s.err, message)
}

// Print writes required program output to the primary stream. It is never
// suppressed by verbosity.
func (s *Shell) Print(message string) error {
	return s.plainLine(s.out, message)
}

// Info writes a normal message to the primary stream. Suppressed at Quiet.
func (s *Shell) Info(message string) error {
	if s.verbosity == Quiet {
		return nil
	}
	return s.plainLine(s.out, message)
}

// Debug writes a debugging message to the primary stream. Emitted only at
// Verbose.
func (s *Shell) Debug(message string) error {
	if s.verbosity != Verbose {
		return nil
	}
	return s.plainLine(s.out, message)
}

// Fatal writes a red "error" status and terminates the process with code.
// The diagnostic write is best effort; a failure there does not stop the
// termination.
func (s *Shell) Fatal(message string, code int) {
	_ = s.Error(message)
	osExit(code)
}

// FatalUsage reports a flag that requires a value but was given none, then
// terminates the process with code. Exempt from verbosity suppression.
func (s *Shell) FatalUsage(arg string, code int) {
	_ = s.errorUsage(arg)
	osExit(code)
}

func (s *Shell) errorUsage(arg string) error {
	st := s.err
	if err := s.eraseIfNeeded(st); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(s.paint(st, tag+" error", attrBold, attrRed))
	b.WriteString(s.paint(st, ":", attrBold))
	b.WriteString(" The argument '")
	b.WriteString(s.paint(st, arg, attrYellow))
	b.WriteString("' requires a value but none was supplied\n")
	b.WriteString("Usage:\n")
	b.WriteString("    cross [OPTIONS] [SUBCOMMAND]\n")
	b.WriteString("\n")
	b.WriteString("For more information try ")
	b.WriteString(s.paint(st, "--help", attrGreen))
	b.WriteString("\n")

	if _, err := io.WriteString(st, b.String()); err != nil {
		return err
	}
	return st.Flush()
}

// WithVerbosity runs fn with the shell temporarily set to v, restoring the
// previous level afterward even when fn fails.
func (s *Shell) WithVerbosity(v Verbosity, fn func(*Shell) error) error {
	old := s.verbosity
	s.verbosity = v
	defer func() { s.verbosity = old }()
	return fn(s)
}

// AsQuiet runs fn at Quiet verbosity.
func (s *Shell) AsQuiet(fn func(*Shell) error) error {
	return s.WithVerbosity(Quiet, fn)
}

// AsNormal runs fn at Normal verbosity.
func (s *Shell) AsNormal(fn func(*Shell) error) error {
	return s.WithVerbosity(Normal, fn)
}

// AsVerbose runs fn at Verbose verbosity.
func (s *Shell) AsVerbose(fn func(*Shell) error) error {
	return s.WithVerbosity(Verbose, fn)
}
