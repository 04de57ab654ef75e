package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
)

// CartStore defines the session cart persistence contract. Carts are keyed
// by session identifier and are ephemeral: a missing cart reads back as an
// empty one.
type CartStore interface {
	// Get retrieves the cart for the session, empty when absent.
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)

	// Save replaces the session's cart contents.
	Save(ctx context.Context, sessionID string, c *cart.Cart) error

	// Clear removes the session's cart. Clearing an absent cart is a no-op.
	Clear(ctx context.Context, sessionID string) error
}
