package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// ClearCartCommandHandler handles emptying session carts.
type ClearCartCommandHandler struct {
	cartStore ports.CartStore
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(cartStore ports.CartStore) ClearCartCommandHandler {
	return ClearCartCommandHandler{cartStore: cartStore}
}

// Handle empties the session's cart. Idempotent.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Clear(ctx, cmd.SessionID())
}
