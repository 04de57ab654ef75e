package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items. Customers may only
// read their own orders; administrators may read any order.
type GetOrderQuery struct {
	orderID kernel.UUID
	userID  kernel.UUID
	role    kernel.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID, userID kernel.UUID, role kernel.Role) (GetOrderQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		userID.Validate(),
		role.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		userID:  userID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// UserID returns the requesting user.
func (q GetOrderQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns the requesting user's role.
func (q GetOrderQuery) Role() kernel.Role {
	return q.role
}

// OrderItemResponse is one order line in an order response.
type OrderItemResponse struct {
	ProductID      string `json:"productId"`
	Qty            int    `json:"qty"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	SubtotalCents  int64  `json:"subtotalCents"`
}

// GetOrderQueryResponse is the full order representation.
type GetOrderQueryResponse struct {
	ID         string              `json:"id"`
	UserID     string              `json:"userId"`
	Status     string              `json:"status"`
	TotalCents int64               `json:"totalCents"`
	PlacedAt   time.Time           `json:"placedAt"`
	Items      []OrderItemResponse `json:"items"`
}
