package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// RemoveCartItemCommandHandler handles dropping entries from session carts.
type RemoveCartItemCommandHandler struct {
	cartStore ports.CartStore
}

// NewRemoveCartItemCommandHandler creates a handler for cart removals.
func NewRemoveCartItemCommandHandler(cartStore ports.CartStore) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{cartStore: cartStore}
}

// Handle removes the product's entry. Removing an absent entry succeeds.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cart, err := h.cartStore.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	cart.RemoveItem(cmd.ProductID())

	return h.cartStore.Save(ctx, cmd.SessionID(), cart)
}
