// Package correlation carries a per-request correlation id across HTTP
// handlers, Kafka messages and log lines.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the HTTP header the id travels in.
const HeaderName = "X-Correlation-ID"

// KafkaHeaderName is the message header the id travels in. It matches
// HeaderName so ids survive the HTTP-to-Kafka hop unchanged.
const KafkaHeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext returns the correlation id stored in ctx, or "" when the
// request never went through the middleware.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// WithID stores the correlation id on the context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// NewID mints a fresh correlation id.
func NewID() string {
	return uuid.New().String()
}
