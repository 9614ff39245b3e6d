package catalog_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("should create product with valid data", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := catalog.NewProduct(id, " Big Mac ", kernel.MustMoney("5.99"), catalog.Grelha, createdAt)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Big Mac", p.Name())
		assert.Equal(t, "5.99", p.Price().String())
		assert.Equal(t, catalog.Grelha, p.Category())
		assert.Equal(t, createdAt, p.CreatedAt())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		_, err := catalog.NewProduct(kernel.NewUUID(), "", kernel.MustMoney("1"), catalog.Bebida, createdAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		_, err := catalog.NewProduct(kernel.NewUUID(), "Agua", kernel.ZeroMoney(), catalog.Bebida, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "product price")
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		_, err := catalog.NewProduct(kernel.NewUUID(), "Agua", kernel.MustMoney("1"), catalog.Unknown, createdAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, err := catalog.NewProduct(kernel.UUID{}, "", kernel.ZeroMoney(), catalog.Unknown, createdAt)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_Validate(t *testing.T) {
	var nilProduct *catalog.Product
	assert.Equal(t, catalog.ErrProductIsNotConstructed, nilProduct.Validate())
	assert.Equal(t, catalog.ErrProductIsNotConstructed, (&catalog.Product{}).Validate())
}
