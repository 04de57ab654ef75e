// Package productrepo provides data transfer objects and mapping functions
// for product persistence, including the conditional stock movements used
// by checkout and cancellation.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	SKU        string `gorm:"uniqueIndex"`
	PriceCents int64
	Qty        int
	Status     string `gorm:"type:varchar(16);index"`
	ImageURL   string
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product snapshot to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:         p.ID().Bytes(),
		Name:       p.Name(),
		SKU:        p.SKU(),
		PriceCents: p.PriceCents(),
		Qty:        p.Qty(),
		Status:     string(p.Status()),
		ImageURL:   p.ImageURL(),
	}
}

// toDomain converts a database DTO to a product snapshot.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, dto.Name, dto.SKU, dto.PriceCents, dto.Qty, product.Status(dto.Status), dto.ImageURL)
}
