package shell

import (
	"errors"
	"fmt"
)

// ErrInvalidColor reports a --color value outside always/never/auto.
var ErrInvalidColor = errors.New("invalid color mode")

// ColorMode controls whether ANSI styling is applied to messages.
type ColorMode int

const (
	// ColorAuto styles output only when the destination stream supports it,
	// checked at each write.
	ColorAuto ColorMode = iota
	// ColorAlways forces styling regardless of the destination.
	ColorAlways
	// ColorNever disables styling regardless of the destination.
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ResolveColorMode maps the optional --color flag value to a ColorMode.
// A nil value means the flag was not given and resolves to ColorAuto. Any
// present value must be exactly "always", "never", or "auto"; everything
// else, including the empty string, is rejected with ErrInvalidColor.
func ResolveColorMode(requested *string) (ColorMode, error) {
	if requested == nil {
		return ColorAuto, nil
	}
	switch *requested {
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	case "auto":
		return ColorAuto, nil
	}
	return ColorAuto, fmt.Errorf("%w: argument for --color must be auto, always, or never, but found %q", ErrInvalidColor, *requested)
}
