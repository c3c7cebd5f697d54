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

func TestGormProductRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := mustProduct(t, uuid.New(), "Widget", catalog.ProductTypeSimple)
	require.NoError(t, repo.Save(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", found.Name)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_FindVisibleByStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()
	storeID := uuid.New()

	second := mustProduct(t, storeID, "Second", catalog.ProductTypeSimple)
	second.SortOrder = 2
	first := mustProduct(t, storeID, "First", catalog.ProductTypeSimple)
	first.SortOrder = 1
	hidden := mustProduct(t, storeID, "Hidden", catalog.ProductTypeSimple)
	hidden.VisibleIndividually = false
	otherStore := mustProduct(t, uuid.New(), "Elsewhere", catalog.ProductTypeSimple)

	for _, p := range []*catalog.Product{second, first, hidden, otherStore} {
		require.NoError(t, repo.Save(ctx, p))
	}

	products, err := repo.FindVisibleByStore(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "First", products[0].Name)
	assert.Equal(t, "Second", products[1].Name)
}

func TestGormProductRepository_FindVisibleByStoreEmptyCatalog(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)

	products, err := repo.FindVisibleByStore(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGormProductRepository_FindAssociatedChildren(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()
	storeID := uuid.New()

	parent := mustProduct(t, storeID, "Bundle", catalog.ProductTypeGrouped)
	childA := mustProduct(t, storeID, "Part A", catalog.ProductTypeSimple)
	childB := mustProduct(t, storeID, "Part B", catalog.ProductTypeSimple)
	unrelated := mustProduct(t, storeID, "Unrelated", catalog.ProductTypeSimple)

	for _, p := range []*catalog.Product{parent, childA, childB, unrelated} {
		require.NoError(t, repo.Save(ctx, p))
	}
	require.NoError(t, repo.SaveAssociation(ctx, catalog.NewProductAssociation(parent.ID, childB.ID, 2)))
	require.NoError(t, repo.SaveAssociation(ctx, catalog.NewProductAssociation(parent.ID, childA.ID, 1)))

	children, err := repo.FindAssociatedChildren(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "Part A", children[0].Name)
	assert.Equal(t, "Part B", children[1].Name)
}

func TestGormProductRepository_SaveUpserts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := mustProduct(t, uuid.New(), "Widget", catalog.ProductTypeSimple)
	require.NoError(t, repo.Save(ctx, product))

	product.Name = "Renamed Widget"
	require.NoError(t, repo.Save(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Widget", found.Name)

	var count int64
	require.NoError(t, db.Model(&catalog.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
