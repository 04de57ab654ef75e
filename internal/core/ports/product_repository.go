package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product snapshots
// and stock movements. Stock mutations are expressed as conditional
// in-database operations rather than read-modify-write on the aggregate,
// so concurrent checkouts can never oversell.
type ProductRepository interface {
	// Get retrieves a product snapshot by identifier.
	// Returns errs.ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetActiveByIDs retrieves the active products among the given
	// identifiers. Missing or inactive products are simply absent from
	// the result.
	GetActiveByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error)

	// DeductStock atomically decrements the product's stock by qty,
	// refusing the whole operation when remaining stock is insufficient.
	// Returns errs.ObjectNotFoundError for unknown products and
	// errs.BusinessRuleError when stock would go negative.
	DeductStock(ctx context.Context, id kernel.UUID, qty int) error

	// RestoreStock increments the product's stock by qty.
	// Returns errs.ObjectNotFoundError for unknown products.
	RestoreStock(ctx context.Context, id kernel.UUID, qty int) error
}
