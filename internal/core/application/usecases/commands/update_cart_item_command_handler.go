package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// UpdateCartItemCommandHandler handles quantity changes on cart entries.
type UpdateCartItemCommandHandler struct {
	cartStore ports.CartStore
}

// NewUpdateCartItemCommandHandler creates a handler for cart quantity updates.
func NewUpdateCartItemCommandHandler(cartStore ports.CartStore) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{cartStore: cartStore}
}

// Handle sets the entry's quantity, removing it when the quantity is zero.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cart, err := h.cartStore.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = cart.UpdateItem(cmd.ProductID(), cmd.Qty()); err != nil {
		return err
	}

	return h.cartStore.Save(ctx, cmd.SessionID(), cart)
}
