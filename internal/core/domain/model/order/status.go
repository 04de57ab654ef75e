package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	pending ──┬──> paid ────> shipped
//	          │     │            │ (admin moves freely except the rule below)
//	          └──> canceled <────┘
//
// System-driven transitions (payment outcome) only move pending orders.
// Administrators may set any status on any order, with one exception:
// a shipped order can never be set to canceled. Canceled is not otherwise
// terminal; the admin surface may revive an order deliberately.
type Status string

const (
	// StatusPending is the initial status: the order exists and stock has
	// been deducted, but payment has not resolved yet.
	StatusPending Status = "pending"

	// StatusPaid indicates the payment was approved.
	StatusPaid Status = "paid"

	// StatusShipped indicates fulfilment has handed the order over.
	StatusShipped Status = "shipped"

	// StatusCanceled indicates the order was abandoned, either by a payment
	// decline, a customer cancellation, or an administrator.
	StatusCanceled Status = "canceled"
)

// StatusFromString parses a status received from external input.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the four known states.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusCanceled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	return string(s)
}

// markPaid is the system transition applied when the gateway approves.
func (s Status) markPaid() (Status, error) {
	if s != StatusPending {
		return "", errs.NewBusinessRuleError(
			fmt.Sprintf("only pending orders can be marked paid, current status is %s", s))
	}
	return StatusPaid, nil
}

// markPaymentDeclined is the system transition applied when the gateway
// declines or times out. Stock is deliberately not restored on this path.
func (s Status) markPaymentDeclined() (Status, error) {
	if s != StatusPending {
		return "", errs.NewBusinessRuleError(
			fmt.Sprintf("only pending orders can be canceled by a payment decline, current status is %s", s))
	}
	return StatusCanceled, nil
}

// cancel is the customer/admin cancellation transition. Only pending
// orders qualify; callers restore stock after a successful transition.
func (s Status) cancel() (Status, error) {
	if s != StatusPending {
		return "", errs.NewBusinessRuleError("only pending orders can be canceled")
	}
	return StatusCanceled, nil
}

// changeTo is the administrative transition. Any target status is allowed
// except canceling a shipped order. The returned restock flag tells the
// caller whether item quantities must be returned to product stock: true
// exactly when moving into canceled from a non-canceled status. Setting
// the current status again is a permitted no-op and never restocks twice.
func (s Status) changeTo(to Status) (Status, bool, error) {
	if err := to.Validate(); err != nil {
		return "", false, err
	}

	if s == StatusShipped && to == StatusCanceled {
		return "", false, errs.NewBusinessRuleError("cannot cancel a shipped order")
	}

	restock := to == StatusCanceled && s != StatusCanceled
	return to, restock, nil
}
