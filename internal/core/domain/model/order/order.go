package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the durable record of a checkout attempt. Its items carry
// prices frozen at creation time; the total is always the sum of the item
// subtotals. An order is created in pending status, before payment resolves,
// so that the record survives even when the payment path fails.
type Order struct {
	id         kernel.UUID
	userID     kernel.UUID
	status     Status
	totalCents int64
	placedAt   time.Time
	items      []Item

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order from a priced cart summary. Each summary
// line becomes an immutable order item snapshotting the unit price at this
// moment.
func NewOrder(id kernel.UUID, userID kernel.UUID, summary cart.Summary, placedAt time.Time) (*Order, error) {
	if len(summary.Items) == 0 {
		return nil, errs.NewValueIsRequiredError("summary.Items")
	}

	items := make([]Item, 0, len(summary.Items))
	for _, line := range summary.Items {
		item, err := NewItem(kernel.NewUUID(), line.ProductID, line.UnitPriceCents, line.Qty)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return RestoreOrder(id, userID, StatusPending, items, placedAt)
}

// RestoreOrder rebuilds an order from persistence. The total is recomputed
// from the items rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	status Status,
	items []Item,
	placedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if placedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("placedAt")
	}

	o := &Order{
		id:       id,
		userID:   userID,
		status:   status,
		placedAt: placedAt,
		items:    append([]Item(nil), items...),

		guard: guard.NewConstructorGuard(),
	}
	o.recomputeTotal()
	return o, nil
}

// Validate returns an error for orders obtained via the zero value.
func (o *Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the customer who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalCents returns the sum of the item subtotals.
func (o *Order) TotalCents() int64 {
	return o.totalCents
}

// PlacedAt returns the order creation time.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// IsOwnedBy reports whether the order belongs to the given user.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// MarkPaid transitions the order to paid after payment approval.
func (o *Order) MarkPaid() error {
	next, err := o.status.markPaid()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// MarkPaymentDeclined cancels the order after a payment decline or timeout.
// Stock already reserved for the order stays deducted on this path.
func (o *Order) MarkPaymentDeclined() error {
	next, err := o.status.markPaymentDeclined()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Cancel performs a customer or administrative cancellation. Only pending
// orders can be canceled this way; the caller restores stock afterwards.
func (o *Order) Cancel() error {
	next, err := o.status.cancel()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// ChangeStatus applies an administrative status change. The returned flag
// reports whether the caller must restore the order's item quantities to
// product stock (moving into canceled from a non-canceled status).
func (o *Order) ChangeStatus(to Status) (restock bool, err error) {
	next, restock, err := o.status.changeTo(to)
	if err != nil {
		return false, err
	}
	o.status = next
	return restock, nil
}

func (o *Order) recomputeTotal() {
	var total int64
	for _, item := range o.items {
		total += item.SubtotalCents()
	}
	o.totalCents = total
}
