package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to convert a session cart into a
// durable order, charging the customer through the payment gateway.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutCommand(orderID, userID, sessionID)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // nothing was charged, cart is untouched
//	}
//	if !result.Success {
//	    // order exists in canceled status, payment was declined
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	userID    kernel.UUID
	sessionID string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the session's cart on
// behalf of the given user.
func NewCheckoutCommand(orderID kernel.UUID, userID kernel.UUID, sessionID string) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setSessionID(sessionID),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the customer placing the order.
func (c CheckoutCommand) UserID() kernel.UUID {
	return c.userID
}

// SessionID returns the session whose cart is checked out.
func (c CheckoutCommand) SessionID() string {
	return c.sessionID
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CheckoutCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	c.sessionID = sessionID
	return nil
}
