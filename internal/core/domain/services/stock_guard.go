// Package services provides domain services that coordinate business rules
// across multiple aggregates of the checkout subsystem.
package services

import (
	"fmt"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// StockGuard is a domain service validating a priced cart summary against
// current product stock before any reservation is attempted.
//
// This check is advisory: stock may still change between validation and
// the repository's conditional decrement, which is the authoritative
// reservation step. The guard exists to fail fast with a readable error
// naming the offending product.
type StockGuard struct{}

// NewStockGuard creates a new StockGuard instance.
func NewStockGuard() StockGuard {
	return StockGuard{}
}

// ValidateStock checks every line item against the product snapshots.
// It returns a business rule error naming the first product that is
// missing, not sellable, or short on stock.
func (g StockGuard) ValidateStock(items []cart.LineItem, products map[kernel.UUID]*product.Product) error {
	for _, item := range items {
		p, ok := products[item.ProductID]
		if !ok || !p.IsActive() {
			return errs.NewBusinessRuleError(
				fmt.Sprintf("product %s is unavailable", item.Name))
		}

		if p.Qty() < item.Qty {
			return errs.NewBusinessRuleError(
				fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
					p.Name(), item.Qty, p.Qty()))
		}
	}

	return nil
}
