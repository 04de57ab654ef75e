package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle retrieves the order, enforcing ownership for non-administrators.
// Unknown orders yield an ObjectNotFoundError; someone else's order yields
// a NotAuthorizedError.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		id         uuid.UUID
		userID     uuid.UUID
		status     string
		totalCents int64
		placedAt   time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			total_cents,
			placed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	if err := row.Scan(&id, &userID, &status, &totalCents, &placedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if !query.Role().IsAdmin() && !ownerID.IsEqual(query.UserID()) {
		return GetOrderQueryResponse{}, errs.NewNotAuthorizedError("order belongs to another customer")
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:         id.String(),
		UserID:     userID.String(),
		Status:     status,
		TotalCents: totalCents,
		PlacedAt:   placedAt,
		Items:      items,
	}, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			qty,
			unit_price_cents,
			subtotal_cents
		FROM order_items
		WHERE order_id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			productID      uuid.UUID
			qty            int
			unitPriceCents int64
			subtotalCents  int64
		)

		if err = rows.Scan(&productID, &qty, &unitPriceCents, &subtotalCents); err != nil {
			return nil, err
		}

		items = append(items, OrderItemResponse{
			ProductID:      productID.String(),
			Qty:            qty,
			UnitPriceCents: unitPriceCents,
			SubtotalCents:  subtotalCents,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
