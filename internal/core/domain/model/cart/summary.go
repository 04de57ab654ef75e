package cart

import (
	"sort"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// LowStockThreshold is the stock level at or below which a product is
// reported as low_stock in cart summaries.
const LowStockThreshold = 5

// StockStatus is the availability label computed for a cart line item.
type StockStatus string

const (
	StockStatusIn  StockStatus = "in_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusOut StockStatus = "out_of_stock"
)

// LineItem is a priced cart entry, computed fresh on every summary request
// by joining the cart against live product state. It is never persisted.
type LineItem struct {
	ProductID      kernel.UUID
	Name           string
	SKU            string
	Qty            int
	UnitPriceCents int64
	SubtotalCents  int64
	StockAvailable int
	StockStatus    StockStatus
	ImageURL       string
}

// Summary is the structured representation of the cart contents.
// An empty cart yields a Summary with no items and zero totals.
type Summary struct {
	Items      []LineItem
	TotalCents int64
	ItemCount  int
}

// Summarize materializes the cart into priced line items against the given
// product snapshots. Entries referencing a missing or inactive product are
// silently dropped; quantities are defensively clamped to at least 1.
// Items are ordered by product name (then ID) for stable output.
func Summarize(c *Cart, products map[kernel.UUID]*product.Product) Summary {
	summary := Summary{Items: make([]LineItem, 0, len(c.items))}

	for id, qty := range c.items {
		p, ok := products[id]
		if !ok || !p.IsActive() {
			// Product may have been archived or deleted since it was added.
			continue
		}

		if qty < 1 {
			qty = 1
		}

		unitPrice := p.PriceCents()
		subtotal := unitPrice * int64(qty)
		summary.TotalCents += subtotal

		summary.Items = append(summary.Items, LineItem{
			ProductID:      p.ID(),
			Name:           p.Name(),
			SKU:            p.SKU(),
			Qty:            qty,
			UnitPriceCents: unitPrice,
			SubtotalCents:  subtotal,
			StockAvailable: p.Qty(),
			StockStatus:    stockStatus(p),
			ImageURL:       p.ImageURL(),
		})
	}

	sort.Slice(summary.Items, func(i, j int) bool {
		if summary.Items[i].Name != summary.Items[j].Name {
			return summary.Items[i].Name < summary.Items[j].Name
		}
		return summary.Items[i].ProductID.String() < summary.Items[j].ProductID.String()
	})

	summary.ItemCount = len(summary.Items)
	return summary
}

func stockStatus(p *product.Product) StockStatus {
	switch {
	case p.Qty() <= 0:
		return StockStatusOut
	case p.Qty() <= LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
