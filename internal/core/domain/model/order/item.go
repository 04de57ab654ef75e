package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Item is one order line: a snapshot of the product's unit price and the
// purchased quantity, frozen at order-creation time. Items never change
// after creation; in particular they are never recalculated from the
// product's current price.
type Item struct {
	id             kernel.UUID
	productID      kernel.UUID
	unitPriceCents int64
	qty            int
	subtotalCents  int64
}

// NewItem creates an order line, computing the subtotal from price and qty.
func NewItem(id kernel.UUID, productID kernel.UUID, unitPriceCents int64, qty int) (Item, error) {
	return RestoreItem(id, productID, unitPriceCents, qty, unitPriceCents*int64(qty))
}

// RestoreItem rebuilds an order line from persistence, keeping the stored
// subtotal as-is.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	unitPriceCents int64,
	qty int,
	subtotalCents int64,
) (Item, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
	); err != nil {
		return Item{}, err
	}
	if unitPriceCents < 0 {
		return Item{}, errs.NewValueIsInvalidError("unitPriceCents")
	}
	if qty <= 0 {
		return Item{}, errs.NewValueIsInvalidError("qty")
	}
	if subtotalCents != unitPriceCents*int64(qty) {
		return Item{}, errs.NewValueIsInvalidError("subtotalCents")
	}

	return Item{
		id:             id,
		productID:      productID,
		unitPriceCents: unitPriceCents,
		qty:            qty,
		subtotalCents:  subtotalCents,
	}, nil
}

// ID returns the order line identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the purchased product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// UnitPriceCents returns the unit price frozen at order creation.
func (i Item) UnitPriceCents() int64 {
	return i.unitPriceCents
}

// Qty returns the purchased quantity.
func (i Item) Qty() int {
	return i.qty
}

// SubtotalCents returns unit price times quantity, frozen at creation.
func (i Item) SubtotalCents() int64 {
	return i.subtotalCents
}
