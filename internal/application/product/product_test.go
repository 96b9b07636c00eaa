package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payflow/storepos/internal/domain/product"
	"github.com/payflow/storepos/internal/infrastructure/persistence/memory"
)

func seedProduct(t *testing.T, repo *memory.ProductRepository, sku string) *product.Product {
	t.Helper()
	uc := NewCreateProductUseCase(repo)
	p, err := uc.Execute(context.Background(), CreateProductRequest{
		StoreID:  1,
		Name:     "Espresso",
		Price:    350,
		IsActive: true,
		SKU:      sku,
	})
	require.NoError(t, err)
	return p
}

func TestCreateProductUseCase(t *testing.T) {
	t.Run("creates and fills id", func(t *testing.T) {
		repo := memory.NewProductRepository()
		p := seedProduct(t, repo, "SKU-001")
		assert.NotZero(t, p.ID)
		assert.True(t, p.IsActive)
	})

	t.Run("duplicate sku", func(t *testing.T) {
		repo := memory.NewProductRepository()
		seedProduct(t, repo, "SKU-001")

		uc := NewCreateProductUseCase(repo)
		_, err := uc.Execute(context.Background(), CreateProductRequest{
			StoreID: 1, Name: "Lungo", Price: 400, IsActive: true, SKU: "SKU-001",
		})
		assert.ErrorIs(t, err, product.ErrSKUDuplicate)
	})

	t.Run("negative price", func(t *testing.T) {
		repo := memory.NewProductRepository()
		uc := NewCreateProductUseCase(repo)
		_, err := uc.Execute(context.Background(), CreateProductRequest{
			StoreID: 1, Name: "Lungo", Price: -1, SKU: "SKU-002",
		})
		assert.ErrorIs(t, err, product.ErrInvalidPrice)
	})
}

func TestUpdateProductUseCase(t *testing.T) {
	repo := memory.NewProductRepository()
	p := seedProduct(t, repo, "SKU-001")

	newPrice := int64(400)
	uc := NewUpdateProductUseCase(repo)
	updated, err := uc.Execute(context.Background(), UpdateProductRequest{
		ProductID: p.ID,
		Name:      "Lungo",
		Price:     &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lungo", updated.Name)
	assert.Equal(t, int64(400), updated.Price)

	_, err = uc.Execute(context.Background(), UpdateProductRequest{ProductID: 99})
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestActivateDeactivateProductUseCases(t *testing.T) {
	repo := memory.NewProductRepository()
	p := seedProduct(t, repo, "SKU-001")

	deactivate := NewDeactivateProductUseCase(repo)
	updated, err := deactivate.Execute(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	activate := NewActivateProductUseCase(repo)
	updated, err = activate.Execute(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestListProductsUseCase(t *testing.T) {
	repo := memory.NewProductRepository()
	seedProduct(t, repo, "SKU-001")
	seedProduct(t, repo, "SKU-002")
	inactive := seedProduct(t, repo, "SKU-003")

	deactivate := NewDeactivateProductUseCase(repo)
	_, err := deactivate.Execute(context.Background(), inactive.ID)
	require.NoError(t, err)

	uc := NewListProductsUseCase(repo)

	products, total, err := uc.Execute(context.Background(), ListProductsRequest{
		StoreID: 1, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, products, 3)

	products, total, err = uc.Execute(context.Background(), ListProductsRequest{
		StoreID: 1, Page: 1, PageSize: 10, OnlyActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)
}
