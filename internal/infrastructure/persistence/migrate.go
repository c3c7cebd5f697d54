package persistence

import (
	"gorm.io/gorm"

	"github.com/shopfeed/backend/internal/domain/catalog"
	"github.com/shopfeed/backend/internal/domain/feed"
	"github.com/shopfeed/backend/internal/domain/localization"
	"github.com/shopfeed/backend/internal/domain/store"
)

// AutoMigrate creates or updates the schema for all persisted models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&store.Store{},
		&store.Currency{},
		&catalog.Product{},
		&catalog.ProductAssociation{},
		&catalog.Category{},
		&catalog.ProductCategory{},
		&catalog.TierPrice{},
		&catalog.Picture{},
		&catalog.Brand{},
		&catalog.ProductBrand{},
		&feed.TaxonomyOverride{},
		&localization.LocalizedValue{},
	)
}
