// Package correlation propagates a per-request correlation ID through contexts.
package correlation

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// HeaderName is the HTTP header carrying the correlation ID.
const HeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext returns the correlation ID stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// NewID generates a UUID v4 correlation ID.
func NewID() string {
	return uuid.New().String()
}

// Ensure returns id, or a fresh one when the caller sent none.
func Ensure(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return NewID()
}
