package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// ExpireStaleOrdersCommandHandler cancels pending orders abandoned by a
// crashed or interrupted checkout and returns their stock. Runs from the
// background expiry job.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory UoWFactory
	activity   ports.ActivityRecorder
}

// NewExpireStaleOrdersCommandHandler creates a handler for stale order expiry.
func NewExpireStaleOrdersCommandHandler(uowFactory UoWFactory, activity ports.ActivityRecorder) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle cancels every pending order placed before the cutoff, restoring
// stock for each, in one transaction. Returns the number of expired orders.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetPendingPlacedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, o := range stale {
		if err = o.Cancel(); err != nil {
			return 0, err
		}

		if err = restoreOrderStock(ctx, uow.ProductRepository(), o); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, o := range stale {
		h.activity.RecordOrderEvent(ctx, o.ID(), "order_expired", nil)
	}

	return len(stale), nil
}
