package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpserver "storefront/internal/adapters/in/http"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyCartStore always yields an empty cart. Used where the request must
// fail before any mutation happens.
type emptyCartStore struct{}

func (emptyCartStore) Get(_ context.Context, _ string) (*cart.Cart, error) {
	return cart.NewCart(), nil
}

func (emptyCartStore) Save(_ context.Context, _ string, _ *cart.Cart) error { return nil }

func (emptyCartStore) Clear(_ context.Context, _ string) error { return nil }

func newTestServer(checkoutHandler commands.CheckoutCommandHandler) *httpserver.Server {
	return httpserver.NewServer(
		commands.AddCartItemCommandHandler{},
		commands.UpdateCartItemCommandHandler{},
		commands.RemoveCartItemCommandHandler{},
		commands.ClearCartCommandHandler{},
		checkoutHandler,
		commands.CancelOrderCommandHandler{},
		commands.ChangeOrderStatusCommandHandler{},
		queries.GetCartSummaryQueryHandler{},
		queries.GetOrderQueryHandler{},
		queries.ListOrdersQueryHandler{},
	)
}

func newContext(t *testing.T, e *echo.Echo, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("X-User-Id", kernel.NewUUID().String())
	req.Header.Set("X-Session-Id", "sess-1")
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestServer_CancelOrder_MalformedOrderID(t *testing.T) {
	s := newTestServer(commands.CheckoutCommandHandler{})
	ctx, rec := newContext(t, echo.New(), http.MethodPost, "/api/v1/orders/not-a-uuid/cancel")
	ctx.SetParamNames("orderId")
	ctx.SetParamValues("not-a-uuid")

	require.NoError(t, s.CancelOrder(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body httpserver.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Code)
}

func TestServer_GetOrder_MalformedOrderID(t *testing.T) {
	s := newTestServer(commands.CheckoutCommandHandler{})
	ctx, rec := newContext(t, echo.New(), http.MethodGet, "/api/v1/orders/42")
	ctx.SetParamNames("orderId")
	ctx.SetParamValues("42")

	require.NoError(t, s.GetOrder(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_AddCartItem_MalformedProductID(t *testing.T) {
	s := newTestServer(commands.CheckoutCommandHandler{})
	ctx, rec := newContext(t, echo.New(), http.MethodPost, "/api/v1/cart/items/garbage")
	ctx.SetParamNames("productId")
	ctx.SetParamValues("garbage")

	require.NoError(t, s.AddCartItem(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CancelOrder_MissingIdentity(t *testing.T) {
	s := newTestServer(commands.CheckoutCommandHandler{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/x/cancel", nil)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	require.NoError(t, s.CancelOrder(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_Checkout_EmptyCartAnswersFailureShape(t *testing.T) {
	checkoutHandler := commands.NewCheckoutCommandHandler(nil, emptyCartStore{}, nil, nil, time.Second)
	s := newTestServer(checkoutHandler)
	ctx, rec := newContext(t, echo.New(), http.MethodPost, "/api/v1/checkout")

	require.NoError(t, s.Checkout(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body httpserver.CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "cart is empty")
	assert.Empty(t, body.OrderID)
}
