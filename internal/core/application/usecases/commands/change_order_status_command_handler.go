package commands

import (
	"context"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles administrative status changes.
// Moving an order into canceled restores its stock; re-setting the
// current status is a no-op and never restores twice.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	activity   ports.ActivityRecorder
}

// NewChangeOrderStatusCommandHandler creates a handler for administrative
// status changes.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory, activity ports.ActivityRecorder) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle applies the status change. Non-administrators are rejected, as is
// canceling a shipped order.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Role().IsAdmin() {
		return errs.NewNotAuthorizedError("changing order status requires the admin role")
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

	previous := o.Status()
	restock, err := o.ChangeStatus(cmd.Status())
	if err != nil {
		return err
	}

	if restock {
		if err = restoreOrderStock(ctx, uow.ProductRepository(), o); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.activity.RecordOrderEvent(ctx, o.ID(), "status_changed", map[string]any{
		"from":    previous.String(),
		"to":      o.Status().String(),
		"restock": restock,
	})

	return nil
}
