package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer and administrative order
// cancellation. Unlike a payment decline, this path restores the reserved
// stock: the customer changed their mind, the goods are still sellable.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	activity   ports.ActivityRecorder
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, activity ports.ActivityRecorder) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle cancels a pending order and restores its stock in one transaction.
// Customers may only cancel their own orders; administrators may cancel
// anyone's. Orders that already left pending are rejected with a business
// rule error.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cmd.Role().IsAdmin() && !o.IsOwnedBy(cmd.UserID()) {
		return errs.NewNotAuthorizedError("order belongs to another customer")
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = restoreOrderStock(ctx, uow.ProductRepository(), o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.activity.RecordOrderEvent(ctx, o.ID(), "order_canceled", map[string]any{
		"by_role": cmd.Role().String(),
	})

	return nil
}

// restoreOrderStock returns every order line's quantity to product stock.
// Products deleted since the order was placed are skipped; the remaining
// lines are still restored.
func restoreOrderStock(ctx context.Context, productRepo ports.ProductRepository, o *order.Order) error {
	for _, item := range o.Items() {
		err := productRepo.RestoreStock(ctx, item.ProductID(), item.Qty())
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return err
		}
	}

	return nil
}
