package feed

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopfeed/backend/internal/domain/catalog"
)

// PriceCalculator computes the final sale price of a product in the
// primary store currency for a given purchase quantity
type PriceCalculator interface {
	FinalPrice(ctx context.Context, product *catalog.Product, quantity int) (decimal.Decimal, error)
}

// TaxCalculator applies tax to a net price
type TaxCalculator interface {
	PriceIncludingTax(ctx context.Context, product *catalog.Product, price decimal.Decimal) (decimal.Decimal, error)
}

// PictureURLResolver builds public URLs for product pictures at a given
// thumbnail size, with a placeholder for products without pictures
type PictureURLResolver interface {
	PictureURL(ctx context.Context, picture *catalog.Picture, size int, storeURL string) (string, error)
	DefaultPictureURL(ctx context.Context, size int, storeURL string) (string, error)
}

// Publisher moves a finished feed file to its published location.
// Implementations must only expose complete files; a failed export is
// never published.
type Publisher interface {
	Publish(ctx context.Context, sourcePath string) (location string, err error)
}
