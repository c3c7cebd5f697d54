package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopfeed/backend/internal/domain/localization"
)

// GormLocalizedValueRepository implements localization.Repository using GORM
type GormLocalizedValueRepository struct {
	db *gorm.DB
}

// NewGormLocalizedValueRepository creates a new GormLocalizedValueRepository
func NewGormLocalizedValueRepository(db *gorm.DB) *GormLocalizedValueRepository {
	return &GormLocalizedValueRepository{db: db}
}

// String resolves a translated field value; ok=false when no
// translation exists for the key
func (r *GormLocalizedValueRepository) String(ctx context.Context, entityName string, entityID uuid.UUID, field, languageTag string) (string, bool, error) {
	var value localization.LocalizedValue
	err := r.db.WithContext(ctx).
		Where("entity_name = ? AND entity_id = ? AND field = ? AND language_tag = ?",
			entityName, entityID, field, languageTag).
		First(&value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return value.Value, true, nil
}

// Save creates or updates a localized value
func (r *GormLocalizedValueRepository) Save(ctx context.Context, value *localization.LocalizedValue) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(value).Error
}
