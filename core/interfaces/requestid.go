// ABOUTME: Request ID propagation through context
// ABOUTME: Lets the gateway tag its log lines with the id assigned at the HTTP edge

package interfaces

import "context"

type requestIDKey struct{}

// ContextWithRequestID returns a copy of ctx carrying id
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID in ctx, or "" when there is none
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
