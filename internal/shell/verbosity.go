package shell

// Verbosity selects how much of the message API actually reaches the
// streams. Levels are ordered by information volume: Quiet < Normal <
// Verbose.
type Verbosity int

const (
	// Quiet suppresses everything except Error, Print, and the fatal paths.
	Quiet Verbosity = iota
	// Normal is the default level.
	Normal
	// Verbose additionally enables Debug output.
	Verbose
)

func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Verbose:
		return "verbose"
	default:
		return "normal"
	}
}

// IsVerbose reports whether v is the Verbose level.
func (v Verbosity) IsVerbose() bool {
	return v == Verbose
}

// ResolveVerbosity maps the --verbose and --quiet flags to a level. Setting
// both is a startup contradiction with no meaningful continuation: a red
// error is printed through a shell built from color at Normal verbosity and
// the process terminates with exitConflict.
func ResolveVerbosity(color ColorMode, verbose, quiet bool) Verbosity {
	switch {
	case verbose && quiet:
		_ = FromColor(color).Error("cannot use both --verbose and --quiet")
		osExit(exitConflict)
		return Normal // reached only when tests stub the exit seam
	case verbose:
		return Verbose
	case quiet:
		return Quiet
	}
	return Normal
}
