package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// PaymentOutcome is the terminal result of a payment attempt. The gateway
// always resolves to one of the two outcomes; transport failures and
// timeouts are mapped to PaymentDeclined by the caller so every checkout
// ends in a definite state.
type PaymentOutcome string

const (
	PaymentApproved PaymentOutcome = "approved"
	PaymentDeclined PaymentOutcome = "declined"
)

// PaymentGateway defines the contract with the external payment provider.
type PaymentGateway interface {
	// Process charges the user for the given amount. It blocks until the
	// provider responds or ctx is done; on ctx cancellation it returns
	// PaymentDeclined together with ctx's error.
	Process(ctx context.Context, userID kernel.UUID, amountCents int64) (PaymentOutcome, error)
}
