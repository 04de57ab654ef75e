package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to drop a product from a cart.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart entry.
func NewRemoveCartItemCommand(sessionID string, productID kernel.UUID) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// SessionID returns the cart's session identifier.
func (c RemoveCartItemCommand) SessionID() string {
	return c.sessionID
}

// ProductID returns the product to remove.
func (c RemoveCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *RemoveCartItemCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	c.sessionID = sessionID
	return nil
}

func (c *RemoveCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
