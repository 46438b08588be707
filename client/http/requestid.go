package http

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request trace ID that Circle echoes in its
// logs and support tooling.
const RequestIDHeader = "X-Request-Id"

type contextKey string

const requestIDContextKey contextKey = "requestID"

// WithRequestID attaches a request ID to ctx. Requests made with ctx send it
// instead of a generated one.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// RequestIDFromContext returns the request ID attached to ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDContextKey).(string); ok {
		return id
	}
	return ""
}

func requestIDFor(ctx context.Context) string {
	if id := RequestIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.New().String()
}
