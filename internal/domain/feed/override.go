package feed

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopfeed/backend/internal/domain/shared"
)

// TaxonomyOverride is a store-maintained mapping from a product to an
// external feed taxonomy string. CustomGoods marks products without
// standard identifiers (GTIN/MPN).
type TaxonomyOverride struct {
	shared.BaseEntity
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Taxonomy    string    `gorm:"type:varchar(500)"`
	CustomGoods bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (TaxonomyOverride) TableName() string {
	return "taxonomy_overrides"
}

// NewTaxonomyOverride creates a new override record for a product
func NewTaxonomyOverride(productID uuid.UUID, taxonomy string, customGoods bool) *TaxonomyOverride {
	return &TaxonomyOverride{
		BaseEntity:  shared.NewBaseEntity(),
		ProductID:   productID,
		Taxonomy:    taxonomy,
		CustomGoods: customGoods,
	}
}

// OverrideRepository defines the interface for override persistence
type OverrideRepository interface {
	// FindByProduct finds the override record for a product, or
	// shared.ErrNotFound when none exists
	FindByProduct(ctx context.Context, productID uuid.UUID) (*TaxonomyOverride, error)

	// Save creates or updates an override record
	Save(ctx context.Context, override *TaxonomyOverride) error
}
