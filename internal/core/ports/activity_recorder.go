package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// ActivityRecorder records notable order lifecycle events for audit
// purposes. Recording is best-effort: implementations must not fail the
// business operation they describe.
type ActivityRecorder interface {
	RecordOrderEvent(ctx context.Context, orderID kernel.UUID, event string, details map[string]any)
}
