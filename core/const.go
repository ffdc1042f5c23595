package core

import "context"

const (
	RequestIDCtxKey = "cs-requestID"
)

const (
	RequestIDHeader = "X-Request-ID"
	TraceIDHeader   = "trace-id"
)

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the correlation id
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the correlation id, or "" if none was attached
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Recalculation reasons, used as metric labels and log attributes
const (
	RecalcCreate       = "create"
	RecalcAbilityScore = "ability_score"
	RecalcProgression  = "progression"
	RecalcCatalog      = "catalog"
)
