package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopfeed/backend/internal/domain/catalog"
	"github.com/shopfeed/backend/internal/domain/shared"
)

// GormBrandRepository implements BrandRepository using GORM
type GormBrandRepository struct {
	db *gorm.DB
}

// NewGormBrandRepository creates a new GormBrandRepository
func NewGormBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

// FindFirstByProduct finds the first associated brand of a product
func (r *GormBrandRepository) FindFirstByProduct(ctx context.Context, productID uuid.UUID) (*catalog.Brand, error) {
	var brand catalog.Brand
	if err := r.db.WithContext(ctx).
		Joins("JOIN product_brands ON product_brands.brand_id = brands.id").
		Where("product_brands.product_id = ?", productID).
		Order("product_brands.display_order ASC, brands.id ASC").
		First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &brand, nil
}

// Save creates or updates a brand
func (r *GormBrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(brand).Error
}

// SaveProductBrand creates or updates a product/brand association
func (r *GormBrandRepository) SaveProductBrand(ctx context.Context, productBrand *catalog.ProductBrand) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(productBrand).Error
}
