package shell

import "context"

type contextKey struct{}

// WithContext returns a new context carrying the given shell.
func WithContext(ctx context.Context, s *Shell) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext retrieves the shell from the context, or a Default shell when
// none is stored.
func FromContext(ctx context.Context) *Shell {
	if s, ok := ctx.Value(contextKey{}).(*Shell); ok {
		return s
	}
	return Default()
}
