// Package http exposes the storefront's REST API. It translates HTTP
// requests into commands and queries, and maps the core error taxonomy to
// status codes. Identity arrives via headers from the gateway in front of
// this service: X-User-Id, X-User-Role, and X-Session-Id.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID    = "X-User-Id"
	headerUserRole  = "X-User-Role"
	headerSessionID = "X-Session-Id"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CartItemRequest is the body of cart add and update calls.
type CartItemRequest struct {
	Qty int `json:"qty"`
}

// CheckoutResponse reports a checkout attempt. DeliveryEstimate is present
// only when payment was approved; Error only when it was declined.
type CheckoutResponse struct {
	Success          bool   `json:"success"`
	OrderID          string `json:"orderId,omitempty"`
	TotalCents       int64  `json:"totalCents,omitempty"`
	DeliveryEstimate string `json:"deliveryEstimate,omitempty"`
	Error            string `json:"error,omitempty"`
}

// ChangeStatusRequest is the body of the admin status change call.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// CartMutationResponse confirms a cart change and echoes the refreshed
// summary so clients never need a follow-up read.
type CartMutationResponse struct {
	Message string                              `json:"message"`
	Cart    queries.GetCartSummaryQueryResponse `json:"cart"`
}

// OrderMutationResponse confirms an order change and echoes the updated
// order.
type OrderMutationResponse struct {
	Message string                        `json:"message"`
	Order   queries.GetOrderQueryResponse `json:"order"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartItemHandler       commands.AddCartItemCommandHandler
	updateCartItemHandler    commands.UpdateCartItemCommandHandler
	removeCartItemHandler    commands.RemoveCartItemCommandHandler
	clearCartHandler         commands.ClearCartCommandHandler
	checkoutHandler          commands.CheckoutCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getCartSummaryHandler queries.GetCartSummaryQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	listOrdersHandler     queries.ListOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	updateCartItemHandler commands.UpdateCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getCartSummaryHandler queries.GetCartSummaryQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:       addCartItemHandler,
		updateCartItemHandler:    updateCartItemHandler,
		removeCartItemHandler:    removeCartItemHandler,
		clearCartHandler:         clearCartHandler,
		checkoutHandler:          checkoutHandler,
		cancelOrderHandler:       cancelOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getCartSummaryHandler:    getCartSummaryHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items/:productId", s.AddCartItem)
	api.PUT("/cart/items/:productId", s.UpdateCartItem)
	api.DELETE("/cart/items/:productId", s.RemoveCartItem)
	api.POST("/cart/clear", s.ClearCart)

	api.GET("/checkout", s.GetCart)
	api.POST("/checkout", s.Checkout)

	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.GET("/admin/orders", s.ListAllOrders)
	api.POST("/admin/orders/:orderId/status", s.ChangeOrderStatus)
}

// GetCart handles GET /api/v1/cart - returns the priced cart summary.
func (s *Server) GetCart(ctx echo.Context) error {
	sessionID := ctx.Request().Header.Get(headerSessionID)

	query, err := queries.NewGetCartSummaryQuery(sessionID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	summary, err := s.getCartSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

// AddCartItem handles POST /api/v1/cart/items/:productId.
func (s *Server) AddCartItem(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body CartItemRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddCartItemCommand(ctx.Request().Header.Get(headerSessionID), productID, body.Qty)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.writeCartMutation(ctx, "Item added to cart")
}

// UpdateCartItem handles PUT /api/v1/cart/items/:productId.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body CartItemRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateCartItemCommand(ctx.Request().Header.Get(headerSessionID), productID, body.Qty)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.updateCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.writeCartMutation(ctx, "Cart updated")
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:productId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(ctx.Request().Header.Get(headerSessionID), productID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.writeCartMutation(ctx, "Item removed")
}

// ClearCart handles POST /api/v1/cart/clear.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd, err := commands.NewClearCartCommand(ctx.Request().Header.Get(headerSessionID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.writeCartMutation(ctx, "Cart cleared")
}

// writeCartMutation answers a successful cart change with the message and
// the freshly priced summary.
func (s *Server) writeCartMutation(ctx echo.Context, message string) error {
	query, err := queries.NewGetCartSummaryQuery(ctx.Request().Header.Get(headerSessionID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	summary, err := s.getCartSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CartMutationResponse{Message: message, Cart: summary})
}

// Checkout handles POST /api/v1/checkout. A decline answers 400 with the
// reason in the body; the canceled order exists in either case.
func (s *Server) Checkout(ctx echo.Context) error {
	userID, _, err := s.identity(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), userID, ctx.Request().Header.Get(headerSessionID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		// Checkout refusals (empty cart, insufficient stock) share the
		// response shape of a decline so clients parse one failure form.
		if errors.Is(err, errs.ErrBusinessRuleViolated) {
			return ctx.JSON(http.StatusBadRequest, CheckoutResponse{Success: false, Error: err.Error()})
		}
		return s.writeError(ctx, err)
	}

	response := CheckoutResponse{
		Success:    result.Success,
		OrderID:    result.OrderID,
		TotalCents: result.TotalCents,
		Error:      result.DeclineReason,
	}
	if !result.Success {
		return ctx.JSON(http.StatusBadRequest, response)
	}

	response.DeliveryEstimate = result.DeliveryEstimate.UTC().Format(time.RFC3339)
	return ctx.JSON(http.StatusOK, response)
}

// ListOrders handles GET /api/v1/orders - the caller's order history.
func (s *Server) ListOrders(ctx echo.Context) error {
	return s.listOrders(ctx, false)
}

// ListAllOrders handles GET /api/v1/admin/orders - every customer's orders.
func (s *Server) ListAllOrders(ctx echo.Context) error {
	return s.listOrders(ctx, true)
}

func (s *Server) listOrders(ctx echo.Context, allUsers bool) error {
	userID, role, err := s.identity(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid page parameter",
			})
		}
	}

	query, err := queries.NewListOrdersQuery(userID, role, page, allUsers)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	userID, role, err := s.identity(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, userID, role)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	userID, role, err := s.identity(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, userID, role)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.writeOrderMutation(ctx, "Order canceled", orderID, userID, role)
}

// ChangeOrderStatus handles POST /api/v1/admin/orders/:orderId/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	userID, role, err := s.identity(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body ChangeStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, role)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.writeOrderMutation(ctx, "Order status updated", orderID, userID, role)
}

// writeOrderMutation answers a successful order change with the message and
// the updated order.
func (s *Server) writeOrderMutation(ctx echo.Context, message string, orderID, userID kernel.UUID, role kernel.Role) error {
	query, err := queries.NewGetOrderQuery(orderID, userID, role)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderMutationResponse{Message: message, Order: result})
}

// identity extracts the caller's user ID and role from the gateway headers.
func (s *Server) identity(ctx echo.Context) (kernel.UUID, kernel.Role, error) {
	rawID := ctx.Request().Header.Get(headerUserID)
	if rawID == "" {
		return kernel.UUID{}, "", errs.NewNotAuthorizedError("missing " + headerUserID + " header")
	}

	userID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.UUID{}, "", errs.NewNotAuthorizedError("invalid " + headerUserID + " header")
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return kernel.UUID{}, "", err
	}

	return userID, role, nil
}

// writeError maps the core error taxonomy to HTTP status codes.
func (s *Server) writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrNotAuthorized):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrBusinessRuleViolated):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
