// Package cart models the session-scoped demand list a shopper builds up
// before checkout. A Cart is a mapping of product identifier to requested
// quantity; it is ephemeral, owned by exactly one session, and priced only
// on demand by joining it against live catalog state (see Summarize).
package cart

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Cart holds the requested quantity per product for one session.
// The zero number of entries is a valid, empty cart. Cart performs no
// pricing or stock checks itself; those happen at summary and checkout time.
type Cart struct {
	items map[kernel.UUID]int
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{items: make(map[kernel.UUID]int)}
}

// RestoreCart rebuilds a cart from persisted session state.
// Entries with non-positive quantities are dropped.
func RestoreCart(items map[kernel.UUID]int) *Cart {
	c := NewCart()
	for id, qty := range items {
		if qty > 0 {
			c.items[id] = qty
		}
	}
	return c
}

// AddItem merges qty additively into the existing entry for the product.
// Quantity must be positive.
func (c *Cart) AddItem(productID kernel.UUID, qty int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}

	c.items[productID] += qty
	return nil
}

// UpdateItem sets the quantity for the product. A non-positive quantity
// removes the entry.
func (c *Cart) UpdateItem(productID kernel.UUID, qty int) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	if qty <= 0 {
		delete(c.items, productID)
		return nil
	}

	c.items[productID] = qty
	return nil
}

// RemoveItem deletes the product's entry, if present.
func (c *Cart) RemoveItem(productID kernel.UUID) {
	delete(c.items, productID)
}

// Clear empties the cart. Clearing an already empty cart is a no-op.
func (c *Cart) Clear() {
	c.items = make(map[kernel.UUID]int)
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Qty returns the requested quantity for the product, zero when absent.
func (c *Cart) Qty(productID kernel.UUID) int {
	return c.items[productID]
}

// ProductIDs returns the identifiers of all products in the cart.
func (c *Cart) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	return ids
}

// Items returns a copy of the product→quantity mapping for persistence.
func (c *Cart) Items() map[kernel.UUID]int {
	items := make(map[kernel.UUID]int, len(c.items))
	for id, qty := range c.items {
		items[id] = qty
	}
	return items
}
