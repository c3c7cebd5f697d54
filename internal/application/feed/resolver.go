package feed

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shopfeed/backend/internal/domain/catalog"
	"github.com/shopfeed/backend/internal/domain/feed"
	"github.com/shopfeed/backend/internal/domain/shared"
)

// Resolver selects the exportable products of a store. Grouped products
// are expanded into their associated children; any other non-simple
// type is skipped.
type Resolver struct {
	products  catalog.ProductRepository
	overrides feed.OverrideRepository
}

// NewResolver creates a new Resolver
func NewResolver(products catalog.ProductRepository, overrides feed.OverrideRepository) *Resolver {
	return &Resolver{products: products, overrides: overrides}
}

// Resolve returns the ordered set of exportable product records for a
// store. Order follows the catalog search order and is deterministic
// for a given catalog state.
func (r *Resolver) Resolve(ctx context.Context, storeID uuid.UUID) ([]ProductRecord, error) {
	visible, err := r.products.FindVisibleByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	records := make([]ProductRecord, 0, len(visible))
	for i := range visible {
		product := &visible[i]
		switch {
		case product.IsSimple():
			record, err := r.record(ctx, product)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		case product.IsGrouped():
			children, err := r.products.FindAssociatedChildren(ctx, product.ID)
			if err != nil {
				return nil, err
			}
			for j := range children {
				record, err := r.record(ctx, &children[j])
				if err != nil {
					return nil, err
				}
				records = append(records, record)
			}
		}
	}
	return records, nil
}

// record attaches the product's taxonomy override, if any
func (r *Resolver) record(ctx context.Context, product *catalog.Product) (ProductRecord, error) {
	override, err := r.overrides.FindByProduct(ctx, product.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return ProductRecord{Product: product}, nil
		}
		return ProductRecord{}, err
	}
	return ProductRecord{Product: product, Override: override}, nil
}
