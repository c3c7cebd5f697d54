package persistence

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopfeed/backend/internal/domain/catalog"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func mustProduct(t *testing.T, storeID uuid.UUID, name string, productType catalog.ProductType) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(storeID, name, productType)
	require.NoError(t, err)
	return product
}
