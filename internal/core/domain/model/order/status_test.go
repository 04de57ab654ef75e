package order

import (
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("parses_known_statuses", func(t *testing.T) {
		for _, s := range []string{"pending", "paid", "shipped", "canceled"} {
			status, err := StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := StatusFromString("refunded")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_status", func(t *testing.T) {
		_, err := StatusFromString("")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_ChangeTo(t *testing.T) {
	tests := []struct {
		name        string
		from        Status
		to          Status
		wantRestock bool
		wantErr     bool
	}{
		{name: "pending_to_paid", from: StatusPending, to: StatusPaid},
		{name: "paid_to_shipped", from: StatusPaid, to: StatusShipped},
		{name: "pending_to_canceled_restocks", from: StatusPending, to: StatusCanceled, wantRestock: true},
		{name: "paid_to_canceled_restocks", from: StatusPaid, to: StatusCanceled, wantRestock: true},
		{name: "shipped_to_canceled_rejected", from: StatusShipped, to: StatusCanceled, wantErr: true},
		{name: "shipped_to_paid_allowed", from: StatusShipped, to: StatusPaid},
		{name: "canceled_to_pending_allowed", from: StatusCanceled, to: StatusPending},
		{name: "same_status_is_noop", from: StatusPaid, to: StatusPaid},
		{name: "canceled_to_canceled_never_restocks_twice", from: StatusCanceled, to: StatusCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, restock, err := tt.from.changeTo(tt.to)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
				assert.Contains(t, err.Error(), "cannot cancel a shipped order")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, next)
			assert.Equal(t, tt.wantRestock, restock)
		})
	}

	t.Run("rejects_invalid_target", func(t *testing.T) {
		_, _, err := StatusPending.changeTo("delivered")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_PaymentTransitions(t *testing.T) {
	t.Run("mark_paid_from_pending", func(t *testing.T) {
		next, err := StatusPending.markPaid()
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, next)
	})

	t.Run("mark_paid_rejected_when_not_pending", func(t *testing.T) {
		for _, from := range []Status{StatusPaid, StatusShipped, StatusCanceled} {
			_, err := from.markPaid()
			assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		}
	})

	t.Run("decline_cancels_pending", func(t *testing.T) {
		next, err := StatusPending.markPaymentDeclined()
		require.NoError(t, err)
		assert.Equal(t, StatusCanceled, next)
	})

	t.Run("decline_rejected_when_not_pending", func(t *testing.T) {
		_, err := StatusPaid.markPaymentDeclined()
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("cancels_pending", func(t *testing.T) {
		next, err := StatusPending.cancel()
		require.NoError(t, err)
		assert.Equal(t, StatusCanceled, next)
	})

	t.Run("rejected_when_not_pending", func(t *testing.T) {
		for _, from := range []Status{StatusPaid, StatusShipped, StatusCanceled} {
			_, err := from.cancel()
			assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		}
	})
}
