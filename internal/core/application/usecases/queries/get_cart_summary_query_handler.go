package queries

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartSummaryQueryHandler prices the session cart against live catalog
// state. The cart itself lives in the session store; prices, names, and
// stock levels are read fresh from the database on every request, so the
// summary always reflects current catalog truth.
type GetCartSummaryQueryHandler struct {
	db        *gorm.DB
	cartStore ports.CartStore
}

// NewGetCartSummaryQueryHandler creates a handler for cart summary queries.
func NewGetCartSummaryQueryHandler(db *gorm.DB, cartStore ports.CartStore) GetCartSummaryQueryHandler {
	return GetCartSummaryQueryHandler{db: db, cartStore: cartStore}
}

// Handle reads the session cart and joins it against active products.
// Entries whose product has disappeared or been archived are dropped from
// the response.
func (h GetCartSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetCartSummaryQuery,
) (GetCartSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartSummaryQueryResponse{}, err
	}

	sessionCart, err := h.cartStore.Get(ctx, query.SessionID())
	if err != nil {
		return GetCartSummaryQueryResponse{}, err
	}

	response := GetCartSummaryQueryResponse{Items: make([]CartLineItemResponse, 0)}
	if sessionCart.IsEmpty() {
		return response, nil
	}

	products, err := h.loadActiveProducts(ctx, sessionCart.ProductIDs())
	if err != nil {
		return GetCartSummaryQueryResponse{}, err
	}

	summary := cart.Summarize(sessionCart, products)
	for _, item := range summary.Items {
		response.Items = append(response.Items, CartLineItemResponse{
			ProductID:      item.ProductID.String(),
			Name:           item.Name,
			SKU:            item.SKU,
			Qty:            item.Qty,
			UnitPriceCents: item.UnitPriceCents,
			SubtotalCents:  item.SubtotalCents,
			StockAvailable: item.StockAvailable,
			StockStatus:    string(item.StockStatus),
			ImageURL:       item.ImageURL,
		})
	}
	response.TotalCents = summary.TotalCents
	response.ItemCount = summary.ItemCount

	return response, nil
}

func (h GetCartSummaryQueryHandler) loadActiveProducts(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*product.Product, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			sku,
			price_cents,
			qty,
			status,
			image_url
		FROM products
		WHERE id IN ? AND status = ?
	`, rawIDs, product.StatusActive).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[kernel.UUID]*product.Product, len(ids))
	for rows.Next() {
		var (
			id         uuid.UUID
			name       string
			sku        string
			priceCents int64
			qty        int
			status     string
			imageURL   string
		)

		if err = rows.Scan(&id, &name, &sku, &priceCents, &qty, &status, &imageURL); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		p, pErr := product.NewProduct(productID, name, sku, priceCents, qty, product.Status(status), imageURL)
		if pErr != nil {
			return nil, pErr
		}

		products[productID] = p
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
