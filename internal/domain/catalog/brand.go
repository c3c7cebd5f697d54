package catalog

import (
	"github.com/google/uuid"

	"github.com/shopfeed/backend/internal/domain/shared"
)

// Brand is a manufacturer/brand that products can be associated with
type Brand struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (Brand) TableName() string {
	return "brands"
}

// NewBrand creates a new brand
func NewBrand(name string) (*Brand, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Brand name cannot be empty")
	}
	return &Brand{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// ProductBrand associates a product with a brand
type ProductBrand struct {
	shared.BaseEntity
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BrandID      uuid.UUID `gorm:"type:uuid;not null;index"`
	DisplayOrder int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductBrand) TableName() string {
	return "product_brands"
}
