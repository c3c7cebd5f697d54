package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopfeed/backend/internal/domain/shared"
)

// TierPrice is a quantity-dependent price for a product
type TierPrice struct {
	shared.BaseEntity
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (TierPrice) TableName() string {
	return "tier_prices"
}

// NewTierPrice creates a new tier price
func NewTierPrice(productID uuid.UUID, quantity int, price decimal.Decimal) (*TierPrice, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Tier quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Tier price cannot be negative")
	}
	return &TierPrice{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Quantity:   quantity,
		Price:      price,
	}, nil
}
