package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand represents a request to reclaim orders stuck in
// pending status since before the cutoff. A pending order older than the
// cutoff means the checkout process died before settling the payment.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates the expiry command for orders placed
// before the given cutoff.
func NewExpireStaleOrdersCommand(cutoff time.Time) (ExpireStaleOrdersCommand, error) {
	cmd := ExpireStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return ExpireStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// Cutoff returns the staleness cutoff time.
func (c ExpireStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *ExpireStaleOrdersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff
	return nil
}
