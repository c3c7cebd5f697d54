package catalog

import (
	"github.com/google/uuid"

	"github.com/shopfeed/backend/internal/domain/shared"
)

// ProductAssociation links a grouped (parent) product to one of its
// purchasable child products
type ProductAssociation struct {
	shared.BaseEntity
	ParentProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	ChildProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	DisplayOrder    int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductAssociation) TableName() string {
	return "product_associations"
}

// NewProductAssociation creates a new parent/child association
func NewProductAssociation(parentID, childID uuid.UUID, displayOrder int) *ProductAssociation {
	return &ProductAssociation{
		BaseEntity:      shared.NewBaseEntity(),
		ParentProductID: parentID,
		ChildProductID:  childID,
		DisplayOrder:    displayOrder,
	}
}
