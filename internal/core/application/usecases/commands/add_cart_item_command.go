package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to add a product to a session cart.
// Quantities merge additively with any existing entry for the same product.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	productID kernel.UUID
	qty       int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add qty units of a product to
// the session's cart. Quantity must be positive.
func NewAddCartItemCommand(sessionID string, productID kernel.UUID, qty int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
		cmd.setQty(qty),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// SessionID returns the cart's session identifier.
func (c AddCartItemCommand) SessionID() string {
	return c.sessionID
}

// ProductID returns the product to add.
func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Qty returns the quantity to add.
func (c AddCartItemCommand) Qty() int {
	return c.qty
}

func (c *AddCartItemCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	c.sessionID = sessionID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}

	c.qty = qty
	return nil
}
