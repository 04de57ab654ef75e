package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeProduct(t *testing.T, id kernel.UUID) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "Apple", "SKU-APL", 500, 10, product.StatusActive, "")
	require.NoError(t, err)
	return p
}

func TestAddCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand("sess-1", productID, 2)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(activeProduct(t, productID), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	var saved *cart.Cart
	cartStore := new(MockCartStore)
	cartStore.On("Get", ctx, "sess-1").Return(cart.NewCart(), nil).Once()
	cartStore.On("Save", ctx, "sess-1", mock.AnythingOfType("*cart.Cart")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*cart.Cart) }).
		Return(nil).Once()

	h := commands.NewAddCartItemCommandHandler(factory, cartStore)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, saved)
	assert.Equal(t, 2, saved.Qty(productID))
	cartStore.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand("sess-1", productID, 2)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	productRepo.On("Get", ctx, productID).
		Return(nil, errs.NewObjectNotFoundError("productID", productID)).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	cartStore := new(MockCartStore)

	h := commands.NewAddCartItemCommandHandler(factory, cartStore)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cartStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddCartItemCommandHandler_Handle_ArchivedProductReadsAsNotFound(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand("sess-1", productID, 1)
	require.NoError(t, err)

	archived, err := product.NewProduct(productID, "Old", "SKU-OLD", 100, 5, product.StatusArchived, "")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	productRepo.On("Get", ctx, productID).Return(archived, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	cartStore := new(MockCartStore)

	h := commands.NewAddCartItemCommandHandler(factory, cartStore)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cartStore.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAddCartItemCommand_Validation(t *testing.T) {
	t.Run("rejects_empty_session", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand("", kernel.NewUUID(), 1)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_non_positive_qty", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand("sess-1", kernel.NewUUID(), 0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd commands.AddCartItemCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrAddCartItemCommandIsNotConstructed)
	})
}
