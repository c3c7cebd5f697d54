package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopfeed/backend/internal/domain/shared"
)

// Currency is a display currency with its exchange rate against the
// store's primary currency
type Currency struct {
	shared.BaseEntity
	Code      string          `gorm:"type:varchar(3);not null;uniqueIndex"`
	Rate      decimal.Decimal `gorm:"type:decimal(18,8);not null;default:1"`
	Precision int32           `gorm:"not null;default:2"`
	Published bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Currency) TableName() string {
	return "currencies"
}

// NewCurrency creates a new currency
func NewCurrency(code string, rate decimal.Decimal, precision int32) (*Currency, error) {
	if len(code) != 3 {
		return nil, shared.NewDomainError("INVALID_CODE", "Currency code must be 3 characters")
	}
	if rate.Sign() <= 0 {
		return nil, shared.NewDomainError("INVALID_RATE", "Exchange rate must be positive")
	}
	return &Currency{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Rate:       rate,
		Precision:  precision,
		Published:  true,
	}, nil
}

// ConvertFromPrimary converts an amount in the primary store currency
// into this currency
func (c *Currency) ConvertFromPrimary(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.Rate)
}

// CurrencyRepository defines the interface for currency persistence
type CurrencyRepository interface {
	// FindByID finds a currency by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Currency, error)

	// FindByCode finds a currency by its ISO 4217 code
	FindByCode(ctx context.Context, code string) (*Currency, error)

	// Save creates or updates a currency
	Save(ctx context.Context, currency *Currency) error
}
