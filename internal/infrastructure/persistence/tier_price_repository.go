package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopfeed/backend/internal/domain/catalog"
)

// GormTierPriceRepository implements TierPriceRepository using GORM
type GormTierPriceRepository struct {
	db *gorm.DB
}

// NewGormTierPriceRepository creates a new GormTierPriceRepository
func NewGormTierPriceRepository(db *gorm.DB) *GormTierPriceRepository {
	return &GormTierPriceRepository{db: db}
}

// FindByProduct finds all tier prices for a product, ordered by quantity
func (r *GormTierPriceRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.TierPrice, error) {
	var tierPrices []catalog.TierPrice
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("quantity ASC").
		Find(&tierPrices).Error; err != nil {
		return nil, err
	}
	return tierPrices, nil
}

// Save creates or updates a tier price
func (r *GormTierPriceRepository) Save(ctx context.Context, tierPrice *catalog.TierPrice) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(tierPrice).Error
}
