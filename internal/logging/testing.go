package logging

import (
	"bytes"
	"context"

	"github.com/slint-ui/cross/internal/shell"
)

// NewTestContext creates a context with a logger configured per the given
// console settings, writing to a new buffer. It returns both the context
// and the buffer so tests can inspect log output.
func NewTestContext(v shell.Verbosity, color shell.ColorMode) (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := NewLogger(buf)
	Configure(l, v, color)
	return WithLogger(context.Background(), l), buf
}
