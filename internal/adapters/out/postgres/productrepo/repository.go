package productrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product to the database. Used by seeding and tests; the
// catalog collaborator owns the product lifecycle in production.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a product snapshot by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByIDs retrieves the active products among the given IDs.
// Missing or inactive products are absent from the result, not an error.
func (r *GormProductRepository) GetActiveByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error) {
	if len(ids) == 0 {
		return map[kernel.UUID]*product.Product{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("id IN ? AND status = ?", rawIDs, string(product.StatusActive)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	products := make(map[kernel.UUID]*product.Product, len(dtos))
	for _, dto := range dtos {
		p, pErr := toDomain(dto)
		if pErr != nil {
			return nil, pErr
		}
		products[p.ID()] = p
	}

	return products, nil
}

// DeductStock atomically decrements the product's stock. The decrement and
// the stock check happen in one conditional UPDATE, so concurrent checkouts
// can never drive quantity below zero.
func (r *GormProductRepository) DeductStock(ctx context.Context, id kernel.UUID, qty int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND status = ? AND qty >= ?", id.Bytes(), string(product.StatusActive), qty).
		UpdateColumn("qty", gorm.Expr("qty - ?", qty))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyDeductFailure(ctx, id, qty)
	}

	return nil
}

// classifyDeductFailure distinguishes a missing product from an
// insufficient-stock refusal after a conditional decrement matched no rows.
func (r *GormProductRepository) classifyDeductFailure(ctx context.Context, id kernel.UUID, qty int) error {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("productID", id.String())
		}
		return err
	}

	if dto.Status != string(product.StatusActive) {
		return errs.NewBusinessRuleError(fmt.Sprintf("product %s is unavailable", dto.Name))
	}

	return errs.NewBusinessRuleError(
		fmt.Sprintf("insufficient stock for %s: requested %d, available %d", dto.Name, qty, dto.Qty))
}

// RestoreStock increments the product's stock by qty.
func (r *GormProductRepository) RestoreStock(ctx context.Context, id kernel.UUID, qty int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("qty", gorm.Expr("qty + ?", qty))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productID", id.String())
	}

	return nil
}
