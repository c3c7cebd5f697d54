package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindVisibleByStore finds all individually visible products for a
	// store, ordered by (sort_order, id) for deterministic exports
	FindVisibleByStore(ctx context.Context, storeID uuid.UUID) ([]Product, error)

	// FindAssociatedChildren finds the child products of a grouped
	// product, ordered by (display_order, id)
	FindAssociatedChildren(ctx context.Context, parentID uuid.UUID) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// SaveAssociation creates or updates a parent/child association
	SaveAssociation(ctx context.Context, association *ProductAssociation) error
}

// TierPriceRepository defines the interface for tier price persistence
type TierPriceRepository interface {
	// FindByProduct finds all tier prices for a product, ordered by quantity
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]TierPrice, error)

	// Save creates or updates a tier price
	Save(ctx context.Context, tierPrice *TierPrice) error
}

// PictureRepository defines the interface for picture persistence
type PictureRepository interface {
	// FindByProduct finds up to limit pictures for a product, ordered by
	// (display_order, id)
	FindByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]Picture, error)

	// Save creates or updates a picture
	Save(ctx context.Context, picture *Picture) error
}

// BrandRepository defines the interface for brand persistence
type BrandRepository interface {
	// FindFirstByProduct finds the first associated brand of a product,
	// or shared.ErrNotFound when the product has none
	FindFirstByProduct(ctx context.Context, productID uuid.UUID) (*Brand, error)

	// Save creates or updates a brand
	Save(ctx context.Context, brand *Brand) error

	// SaveProductBrand creates or updates a product/brand association
	SaveProductBrand(ctx context.Context, productBrand *ProductBrand) error
}
