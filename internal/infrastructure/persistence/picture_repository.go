package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopfeed/backend/internal/domain/catalog"
)

// GormPictureRepository implements PictureRepository using GORM
type GormPictureRepository struct {
	db *gorm.DB
}

// NewGormPictureRepository creates a new GormPictureRepository
func NewGormPictureRepository(db *gorm.DB) *GormPictureRepository {
	return &GormPictureRepository{db: db}
}

// FindByProduct finds up to limit pictures for a product
func (r *GormPictureRepository) FindByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]catalog.Picture, error) {
	var pictures []catalog.Picture
	query := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("display_order ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&pictures).Error; err != nil {
		return nil, err
	}
	return pictures, nil
}

// Save creates or updates a picture
func (r *GormPictureRepository) Save(ctx context.Context, picture *catalog.Picture) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(picture).Error
}
