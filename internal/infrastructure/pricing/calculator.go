// Package pricing computes sale prices in the primary store currency,
// including quantity-tier discounts and tax.
package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopfeed/backend/internal/domain/catalog"
)

// Calculator implements the feed pipeline's PriceCalculator and
// TaxCalculator contracts over the tier-price table and a flat tax rate
type Calculator struct {
	tierPrices catalog.TierPriceRepository
	taxRate    decimal.Decimal
}

// NewCalculator creates a new Calculator. taxRate is fractional, e.g.
// 0.19 for 19% tax.
func NewCalculator(tierPrices catalog.TierPriceRepository, taxRate decimal.Decimal) *Calculator {
	return &Calculator{tierPrices: tierPrices, taxRate: taxRate}
}

// FinalPrice returns the lowest applicable price for the given purchase
// quantity: the list price, or any tier price whose quantity threshold
// the purchase reaches, whichever is lower.
func (c *Calculator) FinalPrice(ctx context.Context, product *catalog.Product, quantity int) (decimal.Decimal, error) {
	price := product.Price
	if !product.HasTierPrices || quantity <= 1 {
		return price, nil
	}

	tiers, err := c.tierPrices.FindByProduct(ctx, product.ID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, tier := range tiers {
		if tier.Quantity > quantity {
			break
		}
		if tier.Price.LessThan(price) {
			price = tier.Price
		}
	}
	return price, nil
}

// PriceIncludingTax applies the configured flat tax rate to a net price
func (c *Calculator) PriceIncludingTax(ctx context.Context, product *catalog.Product, price decimal.Decimal) (decimal.Decimal, error) {
	return price.Mul(decimal.NewFromInt(1).Add(c.taxRate)), nil
}
