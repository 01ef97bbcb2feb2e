package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textila-api/internal/apperr"
	"textila-api/internal/dto"
	"textila-api/internal/repository"
)

func newProductService(t *testing.T) ProductService {
	t.Helper()
	return NewProductService(repository.NewProductRepository(newTestDB(t)))
}

func TestProductCRUD(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, &dto.CreateProductRequest{
		Name:     "Linen Shirt",
		Category: "shirts",
		Price:    34.50,
	})
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)

	newPrice := 29.99
	newName := "Linen Shirt (Sale)"
	require.NoError(t, svc.Update(ctx, product.ID, &dto.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	}))

	got, err := svc.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, newName, got.Name)
	assert.Equal(t, newPrice, got.Price)
	assert.Equal(t, "shirts", got.Category, "unpatched fields stay put")
	assert.Equal(t, product.CreatedAt.Unix(), got.CreatedAt.Unix(), "createdAt is not patchable")

	require.NoError(t, svc.Delete(ctx, product.ID))

	_, err = svc.Get(ctx, product.ID)
	assert.True(t, apperr.IsNotFound(err))

	// deleting an absent product is not an error
	require.NoError(t, svc.Delete(ctx, product.ID))
}

func TestHomeProductsCappedAtSix(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		_, err := svc.Create(ctx, &dto.CreateProductRequest{
			Name:       fmt.Sprintf("Featured %d", i),
			Price:      10,
			ShowOnHome: true,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, &dto.CreateProductRequest{Name: "Hidden", Price: 10})
	require.NoError(t, err)

	home, err := svc.ListHome(ctx)
	require.NoError(t, err)
	assert.Len(t, home, 6)
	for _, p := range home {
		assert.True(t, p.ShowOnHome)
	}
	for i := 1; i < len(home); i++ {
		assert.False(t, home[i-1].CreatedAt.Before(home[i].CreatedAt), "newest first")
	}
}

func TestUpdateProductRejectsEmptyPatch(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, &dto.CreateProductRequest{Name: "Tee", Price: 9.99})
	require.NoError(t, err)

	err = svc.Update(ctx, product.ID, &dto.UpdateProductRequest{})
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}
