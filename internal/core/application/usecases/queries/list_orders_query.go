package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrdersPageSize is the fixed page size of order listings.
const OrdersPageSize = 10

// ListOrdersQuery retrieves a page of orders, newest first. Customers see
// their own orders; the all-users scope is reserved for administrators.
type ListOrdersQuery struct {
	userID   kernel.UUID
	role     kernel.Role
	page     int
	allUsers bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. Page numbering starts at 1.
// allUsers widens the scope to every customer's orders and requires the
// admin role.
func NewListOrdersQuery(userID kernel.UUID, role kernel.Role, page int, allUsers bool) (ListOrdersQuery, error) {
	if err := errors.Join(
		userID.Validate(),
		role.Validate(),
	); err != nil {
		return ListOrdersQuery{}, err
	}
	if page < 1 {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, int(^uint(0)>>1))
	}
	if allUsers && !role.IsAdmin() {
		return ListOrdersQuery{}, errs.NewNotAuthorizedError("listing all orders requires the admin role")
	}

	return ListOrdersQuery{
		userID:   userID,
		role:     role,
		page:     page,
		allUsers: allUsers,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID returns the requesting user.
func (q ListOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns the requesting user's role.
func (q ListOrdersQuery) Role() kernel.Role {
	return q.role
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// AllUsers reports whether the query spans every customer's orders.
func (q ListOrdersQuery) AllUsers() bool {
	return q.allUsers
}

// OrderSummaryResponse is one order row in a listing.
type OrderSummaryResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Status     string `json:"status"`
	TotalCents int64  `json:"totalCents"`
	PlacedAt   string `json:"placedAt"`
	ItemCount  int    `json:"itemCount"`
}

// ListOrdersQueryResponse is one page of an order listing.
type ListOrdersQueryResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
	Total  int64                  `json:"total"`
	Page   int                    `json:"page"`
	Pages  int                    `json:"pages"`
}
