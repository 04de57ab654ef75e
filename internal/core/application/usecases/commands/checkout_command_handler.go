package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// DeliveryLeadTime is the promised delivery window communicated to the
// customer when payment is approved.
const DeliveryLeadTime = 72 * time.Hour

// CheckoutResult reports how a checkout attempt ended. The order exists in
// either case: paid when the gateway approved, canceled when it declined.
type CheckoutResult struct {
	Success          bool
	OrderID          string
	TotalCents       int64
	DeliveryEstimate time.Time
	DeclineReason    string
}

// CheckoutCommandHandler drives the checkout pipeline: price the cart,
// reserve stock, create the pending order, charge the customer, and settle
// the order's final status.
//
// Stock reservation and order creation commit in one transaction before
// payment starts, so a crash mid-payment leaves a pending order that the
// stale-order expiry job can reclaim. A payment decline cancels the order
// in a follow-up transaction; the reserved stock is intentionally kept
// deducted on that path.
type CheckoutCommandHandler struct {
	uowFactory     UoWFactory
	cartStore      ports.CartStore
	stockGuard     services.StockGuard
	gateway        ports.PaymentGateway
	activity       ports.ActivityRecorder
	paymentTimeout time.Duration
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// paymentTimeout bounds how long a single payment attempt may block; a
// timeout resolves the attempt as declined.
func NewCheckoutCommandHandler(
	uowFactory UoWFactory,
	cartStore ports.CartStore,
	gateway ports.PaymentGateway,
	activity ports.ActivityRecorder,
	paymentTimeout time.Duration,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:     uowFactory,
		cartStore:      cartStore,
		stockGuard:     services.NewStockGuard(),
		gateway:        gateway,
		activity:       activity,
		paymentTimeout: paymentTimeout,
	}
}

// Handle processes the checkout command.
//
// Pipeline stages:
//  1. Read and price the session cart; an empty cart is rejected.
//  2. Reserve stock via conditional decrements and create the pending
//     order, committed atomically. Any shortfall rolls everything back.
//  3. Charge through the payment gateway, bounded by the payment timeout.
//  4. Settle the order: paid on approval, canceled on decline. Declines
//     do not restore stock and leave the cart intact for a retry.
//  5. Clear the session cart once payment went through.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	sessionCart, err := h.cartStore.Get(ctx, cmd.SessionID())
	if err != nil {
		return CheckoutResult{}, err
	}
	if sessionCart.IsEmpty() {
		return CheckoutResult{}, errs.NewBusinessRuleError("cart is empty")
	}

	newOrder, err := h.reserveAndCreateOrder(ctx, cmd, sessionCart)
	if err != nil {
		return CheckoutResult{}, err
	}

	h.activity.RecordOrderEvent(ctx, newOrder.ID(), "order_placed", map[string]any{
		"user_id":     newOrder.UserID().String(),
		"total_cents": newOrder.TotalCents(),
	})

	outcome := h.processPayment(ctx, cmd, newOrder)

	if outcome != ports.PaymentApproved {
		if err = h.settle(ctx, newOrder.ID(), (*order.Order).MarkPaymentDeclined); err != nil {
			return CheckoutResult{}, err
		}

		h.activity.RecordOrderEvent(ctx, newOrder.ID(), "payment_declined", nil)

		return CheckoutResult{
			Success:       false,
			OrderID:       newOrder.ID().String(),
			TotalCents:    newOrder.TotalCents(),
			DeclineReason: "Payment declined.",
		}, nil
	}

	if err = h.settle(ctx, newOrder.ID(), (*order.Order).MarkPaid); err != nil {
		return CheckoutResult{}, err
	}

	if err = h.cartStore.Clear(ctx, cmd.SessionID()); err != nil {
		return CheckoutResult{}, err
	}

	h.activity.RecordOrderEvent(ctx, newOrder.ID(), "payment_approved", nil)

	return CheckoutResult{
		Success:          true,
		OrderID:          newOrder.ID().String(),
		TotalCents:       newOrder.TotalCents(),
		DeliveryEstimate: time.Now().Add(DeliveryLeadTime),
	}, nil
}

// reserveAndCreateOrder prices the cart, reserves stock, and persists the
// pending order in one transaction.
func (h *CheckoutCommandHandler) reserveAndCreateOrder(
	ctx context.Context,
	cmd CheckoutCommand,
	sessionCart *cart.Cart,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	products, err := productRepo.GetActiveByIDs(ctx, sessionCart.ProductIDs())
	if err != nil {
		return nil, err
	}

	summary := cart.Summarize(sessionCart, products)
	if len(summary.Items) == 0 {
		return nil, errs.NewBusinessRuleError("cart has no purchasable items")
	}

	if err = h.stockGuard.ValidateStock(summary.Items, products); err != nil {
		return nil, err
	}

	// The conditional decrement is the authoritative reservation; any
	// line that cannot be covered aborts the whole transaction.
	for _, item := range summary.Items {
		if err = productRepo.DeductStock(ctx, item.ProductID, item.Qty); err != nil {
			return nil, err
		}
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), summary, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// processPayment charges the customer with a bounded attempt. Gateway
// errors and timeouts resolve to declined so every checkout settles.
func (h *CheckoutCommandHandler) processPayment(ctx context.Context, cmd CheckoutCommand, o *order.Order) ports.PaymentOutcome {
	payCtx, cancel := context.WithTimeout(ctx, h.paymentTimeout)
	defer cancel()

	outcome, err := h.gateway.Process(payCtx, cmd.UserID(), o.TotalCents())
	if err != nil {
		return ports.PaymentDeclined
	}

	return outcome
}

// settle reloads the order in a fresh transaction and applies the payment
// outcome transition.
func (h *CheckoutCommandHandler) settle(
	ctx context.Context,
	orderID kernel.UUID,
	transition func(*order.Order) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = transition(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
