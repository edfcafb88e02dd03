package shell

import "github.com/muesli/termenv"

// attr is a single style attribute. Spans are styled by an ordered attribute
// list so every call site goes through the same formatting path.
type attr int

const (
	attrBold attr = iota
	attrRed
	attrYellow
	attrCyan
	attrGreen
)

// paint applies attrs to text according to the shell's color mode and the
// destination stream's capability at this moment. ColorAlways styles
// unconditionally, ColorNever strips, ColorAuto asks the stream.
func (s *Shell) paint(st *Stream, text string, attrs ...attr) string {
	switch s.color {
	case ColorNever:
		return text
	case ColorAuto:
		if !st.SupportsColor() {
			return text
		}
	}

	styled := termenv.ANSI.String(text)
	for _, a := range attrs {
		switch a {
		case attrBold:
			styled = styled.Bold()
		case attrRed:
			styled = styled.Foreground(termenv.ANSIRed)
		case attrYellow:
			styled = styled.Foreground(termenv.ANSIYellow)
		case attrCyan:
			styled = styled.Foreground(termenv.ANSICyan)
		case attrGreen:
			styled = styled.Foreground(termenv.ANSIGreen)
		}
	}
	return styled.String()
}
