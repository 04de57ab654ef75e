package product_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("creates_valid_product", func(t *testing.T) {
		p, err := product.NewProduct(id, "Widget", "WID-001", 500, 10, product.StatusActive, "https://img.example/widget.png")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Widget", p.Name())
		assert.Equal(t, "WID-001", p.SKU())
		assert.Equal(t, int64(500), p.PriceCents())
		assert.Equal(t, 10, p.Qty())
		assert.True(t, p.IsActive())
	})

	t.Run("rejects_zero_id", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, "Widget", "WID-001", 500, 10, product.StatusActive, "")
		require.Error(t, err)
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := product.NewProduct(id, "", "WID-001", 500, 10, product.StatusActive, "")
		require.Error(t, err)
	})

	t.Run("rejects_empty_sku", func(t *testing.T) {
		_, err := product.NewProduct(id, "Widget", "", 500, 10, product.StatusActive, "")
		require.Error(t, err)
	})

	t.Run("rejects_negative_price", func(t *testing.T) {
		_, err := product.NewProduct(id, "Widget", "WID-001", -1, 10, product.StatusActive, "")
		require.Error(t, err)
	})

	t.Run("rejects_negative_stock", func(t *testing.T) {
		_, err := product.NewProduct(id, "Widget", "WID-001", 500, -1, product.StatusActive, "")
		require.Error(t, err)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := product.NewProduct(id, "Widget", "WID-001", 500, 10, product.Status("hidden"), "")
		require.Error(t, err)
	})
}

func TestProduct_IsActive(t *testing.T) {
	id := kernel.NewUUID()

	active, err := product.NewProduct(id, "Widget", "WID-001", 500, 10, product.StatusActive, "")
	require.NoError(t, err)
	assert.True(t, active.IsActive())

	archived, err := product.NewProduct(id, "Widget", "WID-001", 500, 10, product.StatusArchived, "")
	require.NoError(t, err)
	assert.False(t, archived.IsActive())
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero_value_fails", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("nil_fails", func(t *testing.T) {
		var p *product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
