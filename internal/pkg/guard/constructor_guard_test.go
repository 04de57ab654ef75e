package guard_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NotNil(t, g)

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		require.NoError(t, g.Validate(customError))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	type command struct {
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("command must be created via its constructor")

	t.Run("constructed_command_validates", func(t *testing.T) {
		cmd := command{guard: guard.NewConstructorGuard()}
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd command
		err := cmd.guard.Validate(errNotConstructed)
		require.ErrorIs(t, err, errNotConstructed)
	})
}
