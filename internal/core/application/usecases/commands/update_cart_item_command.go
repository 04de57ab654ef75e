package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand represents a request to set the quantity of a cart
// entry. A zero quantity removes the entry.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	productID kernel.UUID
	qty       int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to set a cart entry's quantity.
// Quantity must not be negative; zero removes the entry.
func NewUpdateCartItemCommand(sessionID string, productID kernel.UUID, qty int) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
		cmd.setQty(qty),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// SessionID returns the cart's session identifier.
func (c UpdateCartItemCommand) SessionID() string {
	return c.sessionID
}

// ProductID returns the product whose entry is updated.
func (c UpdateCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Qty returns the target quantity.
func (c UpdateCartItemCommand) Qty() int {
	return c.qty
}

func (c *UpdateCartItemCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	c.sessionID = sessionID
	return nil
}

func (c *UpdateCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateCartItemCommand) setQty(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidError("qty")
	}

	c.qty = qty
	return nil
}
