package logger

import (
	"context"
	"log/slog"

	"PaymentService/pkg/correlation"
)

const correlationKey = "correlation_id"

// correlationHandler adds the request correlation id carried by ctx to
// every record.
type correlationHandler struct {
	slog.Handler
}

func NewCorrelationHandler(inner slog.Handler) slog.Handler {
	return correlationHandler{Handler: inner}
}

func (h correlationHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := correlation.FromContext(ctx); id != "" {
		r.AddAttrs(slog.String(correlationKey, id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h correlationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return correlationHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h correlationHandler) WithGroup(name string) slog.Handler {
	return correlationHandler{Handler: h.Handler.WithGroup(name)}
}
