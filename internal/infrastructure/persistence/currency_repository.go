package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopfeed/backend/internal/domain/shared"
	"github.com/shopfeed/backend/internal/domain/store"
)

// GormCurrencyRepository implements CurrencyRepository using GORM
type GormCurrencyRepository struct {
	db *gorm.DB
}

// NewGormCurrencyRepository creates a new GormCurrencyRepository
func NewGormCurrencyRepository(db *gorm.DB) *GormCurrencyRepository {
	return &GormCurrencyRepository{db: db}
}

// FindByID finds a currency by its ID
func (r *GormCurrencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Currency, error) {
	var currency store.Currency
	if err := r.db.WithContext(ctx).First(&currency, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &currency, nil
}

// FindByCode finds a currency by its ISO 4217 code
func (r *GormCurrencyRepository) FindByCode(ctx context.Context, code string) (*store.Currency, error) {
	var currency store.Currency
	if err := r.db.WithContext(ctx).First(&currency, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &currency, nil
}

// Save creates or updates a currency
func (r *GormCurrencyRepository) Save(ctx context.Context, currency *store.Currency) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(currency).Error
}
