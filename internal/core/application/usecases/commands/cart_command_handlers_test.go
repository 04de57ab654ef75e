package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartWith(t *testing.T, productID kernel.UUID, qty int) *cart.Cart {
	t.Helper()
	c := cart.NewCart()
	require.NoError(t, c.AddItem(productID, qty))
	return c
}

func TestUpdateCartItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()

	t.Run("sets_quantity", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemCommand("sess-1", productID, 5)
		require.NoError(t, err)

		var saved *cart.Cart
		cartStore := new(MockCartStore)
		cartStore.On("Get", ctx, "sess-1").Return(cartWith(t, productID, 2), nil).Once()
		cartStore.On("Save", ctx, "sess-1", mock.AnythingOfType("*cart.Cart")).
			Run(func(args mock.Arguments) { saved = args.Get(2).(*cart.Cart) }).
			Return(nil).Once()

		h := commands.NewUpdateCartItemCommandHandler(cartStore)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, 5, saved.Qty(productID))
	})

	t.Run("zero_quantity_removes_entry", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemCommand("sess-1", productID, 0)
		require.NoError(t, err)

		var saved *cart.Cart
		cartStore := new(MockCartStore)
		cartStore.On("Get", ctx, "sess-1").Return(cartWith(t, productID, 2), nil).Once()
		cartStore.On("Save", ctx, "sess-1", mock.AnythingOfType("*cart.Cart")).
			Run(func(args mock.Arguments) { saved = args.Get(2).(*cart.Cart) }).
			Return(nil).Once()

		h := commands.NewUpdateCartItemCommandHandler(cartStore)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.True(t, saved.IsEmpty())
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		_, err := commands.NewUpdateCartItemCommand("sess-1", productID, -1)
		require.Error(t, err)
	})
}

func TestRemoveCartItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewRemoveCartItemCommand("sess-1", productID)
	require.NoError(t, err)

	var saved *cart.Cart
	cartStore := new(MockCartStore)
	cartStore.On("Get", ctx, "sess-1").Return(cartWith(t, productID, 2), nil).Once()
	cartStore.On("Save", ctx, "sess-1", mock.AnythingOfType("*cart.Cart")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*cart.Cart) }).
		Return(nil).Once()

	h := commands.NewRemoveCartItemCommandHandler(cartStore)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, saved.IsEmpty())
}

func TestClearCartCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClearCartCommand("sess-1")
	require.NoError(t, err)

	cartStore := new(MockCartStore)
	cartStore.On("Clear", ctx, "sess-1").Return(nil).Once()

	h := commands.NewClearCartCommandHandler(cartStore)
	require.NoError(t, h.Handle(ctx, cmd))

	cartStore.AssertExpectations(t)
}
