package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopfeed/backend/internal/domain/shared"
)

// ProductType discriminates how a catalog entry is sold
type ProductType string

const (
	// ProductTypeSimple is a directly purchasable product
	ProductTypeSimple ProductType = "simple"
	// ProductTypeGrouped is a family whose purchasable units are its
	// associated child products
	ProductTypeGrouped ProductType = "grouped"
)

// InventoryMethod controls whether stock levels are tracked for a product
type InventoryMethod string

const (
	InventoryMethodNone  InventoryMethod = "none"
	InventoryMethodTrack InventoryMethod = "track"
)

// Product represents a product/SKU in the catalog
// It is the aggregate root for product-related operations
type Product struct {
	shared.BaseEntity
	StoreID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name                string          `gorm:"type:varchar(200);not null"`
	Slug                string          `gorm:"type:varchar(200);index"`
	FullDescription     string          `gorm:"type:text"`
	ShortDescription    string          `gorm:"type:text"`
	Type                ProductType     `gorm:"type:varchar(20);not null;default:'simple'"`
	Price               decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	HasTierPrices       bool            `gorm:"not null;default:false"`
	InventoryMethod     InventoryMethod `gorm:"type:varchar(20);not null;default:'none'"`
	StockQuantity       int             `gorm:"not null;default:0"`
	VisibleIndividually bool            `gorm:"not null;default:true"`
	SortOrder           int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(storeID uuid.UUID, name string, productType ProductType) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if productType != ProductTypeSimple && productType != ProductTypeGrouped {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown product type")
	}

	return &Product{
		BaseEntity:          shared.NewBaseEntity(),
		StoreID:             storeID,
		Name:                name,
		Slug:                Slugify(name),
		Type:                productType,
		Price:               decimal.Zero,
		InventoryMethod:     InventoryMethodNone,
		VisibleIndividually: true,
	}, nil
}

// IsSimple returns true for directly purchasable products
func (p *Product) IsSimple() bool {
	return p.Type == ProductTypeSimple
}

// IsGrouped returns true for grouped (parent) products
func (p *Product) IsGrouped() bool {
	return p.Type == ProductTypeGrouped
}

// InStock reports whether the product counts as available for sale.
// Stock only matters when inventory is actively tracked.
func (p *Product) InStock() bool {
	if p.InventoryMethod != InventoryMethodTrack {
		return true
	}
	return p.StockQuantity > 0
}

// SetPrice sets the list price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// SetDescriptions sets the long and short descriptions
func (p *Product) SetDescriptions(full, short string) {
	p.FullDescription = full
	p.ShortDescription = short
	p.UpdatedAt = time.Now()
}

// Slugify derives a URL slug from a product name
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
