package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfeed/backend/internal/domain/catalog"
	"github.com/shopfeed/backend/internal/domain/shared"
)

func TestGormCategoryRepository_FindFirstByProduct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()

	apparel, err := catalog.NewCategory("Apparel", nil)
	require.NoError(t, err)
	shirts, err := catalog.NewCategory("Shirts", &apparel.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, apparel))
	require.NoError(t, repo.Save(ctx, shirts))

	productID := uuid.New()
	require.NoError(t, repo.SaveProductCategory(ctx, &catalog.ProductCategory{
		BaseEntity:   shared.NewBaseEntity(),
		ProductID:    productID,
		CategoryID:   apparel.ID,
		DisplayOrder: 2,
	}))
	require.NoError(t, repo.SaveProductCategory(ctx, &catalog.ProductCategory{
		BaseEntity:   shared.NewBaseEntity(),
		ProductID:    productID,
		CategoryID:   shirts.ID,
		DisplayOrder: 1,
	}))

	found, err := repo.FindFirstByProduct(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, "Shirts", found.Name)

	parent, err := repo.FindByID(ctx, *found.ParentID)
	require.NoError(t, err)
	assert.Equal(t, "Apparel", parent.Name)
	assert.True(t, parent.IsRoot())
}

func TestGormCategoryRepository_NoMappingIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCategoryRepository(db)

	_, err := repo.FindFirstByProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
