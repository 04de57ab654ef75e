package commands

import (
	"context"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// AddCartItemCommandHandler handles adding products to session carts.
// Verifies the product exists and is sellable before touching the cart.
type AddCartItemCommandHandler struct {
	uowFactory ProductUoWFactory
	cartStore  ports.CartStore
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory ProductUoWFactory, cartStore ports.CartStore) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		cartStore:  cartStore,
	}
}

// Handle verifies the product and merges the quantity into the session cart.
// Unknown, archived, or deleted products are reported as not found so the
// catalog's internal lifecycle states stay hidden from shoppers.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !product.IsActive() {
		return errs.NewObjectNotFoundError("productID", cmd.ProductID())
	}

	cart, err := h.cartStore.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = cart.AddItem(cmd.ProductID(), cmd.Qty()); err != nil {
		return err
	}

	return h.cartStore.Save(ctx, cmd.SessionID(), cart)
}
