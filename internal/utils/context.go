// Package utils holds small helpers shared by the transport and adapter
// layers: type-safe context keys, JSON response writing, the resty client
// wrapper, JWT expiry inspection and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys from other
// packages never collide with ours.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the context key under which the request trace id is
// stored by the HTTP trace id middleware.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored in ctx and whether it
// was present and non-empty.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
