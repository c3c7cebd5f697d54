package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopfeed/backend/internal/domain/feed"
	"github.com/shopfeed/backend/internal/domain/shared"
)

// GormOverrideRepository implements OverrideRepository using GORM
type GormOverrideRepository struct {
	db *gorm.DB
}

// NewGormOverrideRepository creates a new GormOverrideRepository
func NewGormOverrideRepository(db *gorm.DB) *GormOverrideRepository {
	return &GormOverrideRepository{db: db}
}

// FindByProduct finds the override record for a product
func (r *GormOverrideRepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*feed.TaxonomyOverride, error) {
	var override feed.TaxonomyOverride
	if err := r.db.WithContext(ctx).
		First(&override, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &override, nil
}

// Save creates or updates an override record
func (r *GormOverrideRepository) Save(ctx context.Context, override *feed.TaxonomyOverride) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(override).Error
}
