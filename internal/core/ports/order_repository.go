package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes to an existing order.
	// Items are immutable after creation and are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetPendingPlacedBefore retrieves orders still pending that were
	// placed before the cutoff. Used by the stale-order expiry job.
	GetPendingPlacedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
