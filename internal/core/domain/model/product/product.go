// Package product models the catalog entity the checkout subsystem reads
// and conditionally mutates. The catalog collaborator owns the product
// lifecycle; this package only captures the fields checkout depends on:
// price, stock quantity, and visibility status.
package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created
// through the NewProduct constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Status is the catalog visibility state of a product. Only active
// products are sold; archived and deleted products are invisible to carts
// and fail stock validation.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusDeleted  Status = "deleted"
)

// Validate checks that the status is one of the known catalog states.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusArchived, StatusDeleted:
		return nil
	default:
		return errs.NewValueIsInvalidError("product status")
	}
}

// Product is a read-mostly snapshot of a catalog product. Prices are
// integer cents. Stock quantity is never negative; deductions go through
// the repository's conditional decrement, not through this type.
type Product struct {
	id         kernel.UUID
	name       string
	sku        string
	priceCents int64
	qty        int
	status     Status
	imageURL   string

	guard guard.ConstructorGuard
}

// NewProduct creates a validated Product snapshot.
func NewProduct(
	id kernel.UUID,
	name string,
	sku string,
	priceCents int64,
	qty int,
	status Status,
	imageURL string,
) (*Product, error) {
	p := &Product{
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSKU(sku),
		p.setPriceCents(priceCents),
		p.setQty(qty),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created via NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// SKU returns the stock keeping unit code.
func (p *Product) SKU() string {
	return p.sku
}

// PriceCents returns the current unit price in integer cents.
func (p *Product) PriceCents() int64 {
	return p.priceCents
}

// Qty returns the stock quantity at the time the snapshot was read.
func (p *Product) Qty() int {
	return p.qty
}

// Status returns the catalog visibility status.
func (p *Product) Status() Status {
	return p.status
}

// ImageURL returns the optional product image URL.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// IsActive reports whether the product is visible and sellable.
func (p *Product) IsActive() bool {
	return p.status == StatusActive
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setPriceCents(priceCents int64) error {
	if priceCents < 0 {
		return errs.NewValueIsInvalidError("priceCents")
	}
	p.priceCents = priceCents
	return nil
}

func (p *Product) setQty(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidError("qty")
	}
	p.qty = qty
	return nil
}

func (p *Product) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
