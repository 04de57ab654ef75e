// Package activity records order lifecycle events to the structured log.
// The log is the audit trail for the storefront; a dedicated event store
// can replace this adapter without touching the core.
package activity

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
)

// SlogRecorder implements ports.ActivityRecorder on top of slog.
type SlogRecorder struct {
	logger *slog.Logger
}

// NewSlogRecorder creates a recorder writing to the given logger.
func NewSlogRecorder(logger *slog.Logger) *SlogRecorder {
	return &SlogRecorder{logger: logger}
}

// RecordOrderEvent logs the event with its details. Never fails.
func (r *SlogRecorder) RecordOrderEvent(ctx context.Context, orderID kernel.UUID, event string, details map[string]any) {
	attrs := make([]any, 0, 2+2*len(details))
	attrs = append(attrs, "order_id", orderID.String())
	for key, value := range details {
		attrs = append(attrs, key, value)
	}

	r.logger.InfoContext(ctx, event, attrs...)
}
