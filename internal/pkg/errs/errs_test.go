package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("qty", 150, 1, 100)

		assert.Equal(t, "qty", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is qty, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("sessionId")

		assert.Equal(t, "sessionId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: sessionId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("sessionId", cause)

		assert.Equal(t, "sessionId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: sessionId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestNotAuthorizedError(t *testing.T) {
	t.Run("NewNotAuthorizedError", func(t *testing.T) {
		err := errs.NewNotAuthorizedError("order belongs to another user")

		assert.Equal(t, "order belongs to another user", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "not authorized: order belongs to another user", err.Error())
		assert.Equal(t, errs.ErrNotAuthorized, err.Unwrap())
	})
}

func TestBusinessRuleError(t *testing.T) {
	t.Run("NewBusinessRuleError", func(t *testing.T) {
		err := errs.NewBusinessRuleError("cart is empty")

		assert.Equal(t, "cart is empty", err.Rule)
		require.NoError(t, err.Cause)
		assert.Equal(t, "business rule violated: cart is empty", err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolated, err.Unwrap())
	})

	t.Run("NewBusinessRuleErrorWithCause", func(t *testing.T) {
		cause := errors.New("stock check failed")
		err := errs.NewBusinessRuleErrorWithCause("insufficient stock", cause)

		assert.Equal(t, "insufficient stock", err.Rule)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "business rule violated: insufficient stock (cause: stock check failed)", err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolated, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrNotAuthorized)
		require.Error(t, errs.ErrBusinessRuleViolated)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "not authorized", errs.ErrNotAuthorized.Error())
		assert.Equal(t, "business rule violated", errs.ErrBusinessRuleViolated.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("status")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("qty", 150, 1, 100)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("sessionId")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		notAuthorizedErr := errs.NewNotAuthorizedError("wrong owner")
		require.ErrorIs(t, notAuthorizedErr, errs.ErrNotAuthorized)

		businessRuleErr := errs.NewBusinessRuleError("cannot cancel a shipped order")
		require.ErrorIs(t, businessRuleErr, errs.ErrBusinessRuleViolated)
	})
}
