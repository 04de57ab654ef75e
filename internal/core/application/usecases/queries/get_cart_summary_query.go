// Package queries contains read-only operations of the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing
// the aggregate repositories used by commands.
package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetCartSummaryQueryIsNotConstructed = errors.New(
	"GetCartSummaryQuery must be created via NewGetCartSummaryQuery constructor",
)

// GetCartSummaryQuery retrieves the priced contents of a session cart.
//
// Example:
//
//	query, err := NewGetCartSummaryQuery(sessionID)
//	if err != nil {
//	    return err
//	}
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d items, %d cents total\n", summary.ItemCount, summary.TotalCents)
type GetCartSummaryQuery struct {
	sessionID string

	guard guard.ConstructorGuard
}

// NewGetCartSummaryQuery creates a query for the session's cart summary.
func NewGetCartSummaryQuery(sessionID string) (GetCartSummaryQuery, error) {
	if sessionID == "" {
		return GetCartSummaryQuery{}, errs.NewValueIsRequiredError("sessionID")
	}

	return GetCartSummaryQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCartSummaryQueryIsNotConstructed)
}

// SessionID returns the session whose cart is summarized.
func (q GetCartSummaryQuery) SessionID() string {
	return q.sessionID
}

// CartLineItemResponse is one priced cart entry in the summary response.
type CartLineItemResponse struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	SKU            string `json:"sku"`
	Qty            int    `json:"qty"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	SubtotalCents  int64  `json:"subtotalCents"`
	StockAvailable int    `json:"stockAvailable"`
	StockStatus    string `json:"stockStatus"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

// GetCartSummaryQueryResponse is the structured cart representation.
// An empty cart yields an empty item list and zero totals.
type GetCartSummaryQueryResponse struct {
	Items      []CartLineItemResponse `json:"items"`
	TotalCents int64                  `json:"totalCents"`
	ItemCount  int                    `json:"itemCount"`
}
