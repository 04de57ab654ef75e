package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty a session cart.
// Clearing an already empty cart succeeds.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the session's cart.
func NewClearCartCommand(sessionID string) (ClearCartCommand, error) {
	cmd := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return ClearCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// SessionID returns the cart's session identifier.
func (c ClearCartCommand) SessionID() string {
	return c.sessionID
}

func (c *ClearCartCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	c.sessionID = sessionID
	return nil
}
