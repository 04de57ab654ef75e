package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order listing pages, newest first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle retrieves one page of orders ordered by placement time descending.
// A page beyond the end yields an empty list, not an error.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	scope := h.db.WithContext(ctx)

	countSQL := `SELECT COUNT(*) FROM orders`
	listSQL := `
		SELECT
			o.id,
			o.user_id,
			o.status,
			o.total_cents,
			o.placed_at,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
		FROM orders o
	`

	var args []any
	if !query.AllUsers() {
		countSQL += ` WHERE user_id = ?`
		listSQL += ` WHERE o.user_id = ?`
		args = append(args, query.UserID().Bytes())
	}
	listSQL += ` ORDER BY o.placed_at DESC, o.id LIMIT ? OFFSET ?`

	var total int64
	if err := scope.Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * OrdersPageSize
	rows, err := scope.Raw(listSQL, append(args, OrdersPageSize, offset)...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0, OrdersPageSize)
	for rows.Next() {
		var (
			id         uuid.UUID
			userID     uuid.UUID
			status     string
			totalCents int64
			placedAt   time.Time
			itemCount  int
		)

		if err = rows.Scan(&id, &userID, &status, &totalCents, &placedAt, &itemCount); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orders = append(orders, OrderSummaryResponse{
			ID:         id.String(),
			UserID:     userID.String(),
			Status:     status,
			TotalCents: totalCents,
			PlacedAt:   placedAt.UTC().Format(time.RFC3339),
			ItemCount:  itemCount,
		})
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	pages := int((total + OrdersPageSize - 1) / OrdersPageSize)

	return ListOrdersQueryResponse{
		Orders: orders,
		Total:  total,
		Page:   query.Page(),
		Pages:  pages,
	}, nil
}
