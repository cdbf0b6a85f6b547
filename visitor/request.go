package visitor

import "context"

type contextKey struct{}

// WithContext attaches a visitor context to a request context
func WithContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the visitor context attached by WithContext, or nil
func FromContext(ctx context.Context) *Context {
	c, _ := ctx.Value(contextKey{}).(*Context)
	return c
}
