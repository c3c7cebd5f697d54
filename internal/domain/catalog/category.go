package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopfeed/backend/internal/domain/shared"
)

// Category is a node in the store's own category tree. It is distinct
// from the external feed taxonomy.
type Category struct {
	shared.BaseEntity
	Name         string     `gorm:"type:varchar(200);not null"`
	ParentID     *uuid.UUID `gorm:"type:uuid;index"`
	DisplayOrder int        `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name string, parentID *uuid.UUID) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		ParentID:   parentID,
	}, nil
}

// IsRoot returns true if the category has no parent
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// ProductCategory associates a product with a category
type ProductCategory struct {
	shared.BaseEntity
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DisplayOrder int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductCategory) TableName() string {
	return "product_categories"
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindFirstByProduct finds the first category a product is mapped
	// to, or shared.ErrNotFound when the product has none
	FindFirstByProduct(ctx context.Context, productID uuid.UUID) (*Category, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// SaveProductCategory creates or updates a product/category mapping
	SaveProductCategory(ctx context.Context, mapping *ProductCategory) error
}
