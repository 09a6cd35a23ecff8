// Package requestctx provides context key helpers for propagating the id of a
// summarization cycle across package boundaries. It has no dependencies so
// both pkg/engine and pkg/modeladapter can import it.
package requestctx

import "context"

type requestIDCtxKey struct{}

// WithRequestID returns a new context carrying the given request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey{}, id)
}

// RequestIDFromContext extracts the request id from the context.
// Returns "" if no request id is present.
func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(requestIDCtxKey{}).(string)
	return v
}
