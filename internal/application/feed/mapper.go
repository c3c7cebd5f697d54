package feed

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shopfeed/backend/internal/domain/catalog"
	"github.com/shopfeed/backend/internal/domain/localization"
	"github.com/shopfeed/backend/internal/domain/shared"
	"github.com/shopfeed/backend/internal/domain/shared/valueobject"
	"github.com/shopfeed/backend/internal/domain/store"
)

const (
	// maxTitleRunes is the title length limit imposed by the feed schema
	maxTitleRunes = 70
	// maxImages caps the number of image links per item (primary + 9)
	maxImages = 10
	// breadcrumbSeparator joins category names root-first
	breadcrumbSeparator = " > "
	// expirationDateLayout is the schema's date format
	expirationDateLayout = "2006-01-02"
)

// productEntityName keys localized product fields
const productEntityName = "product"

// Environment is the per-export context shared by all Map calls
type Environment struct {
	Store    *store.Store
	Currency *store.Currency
	Language string
}

// Mapper derives the external feed fields of a product by combining
// catalog data with pricing, tax, media and localization lookups
type Mapper struct {
	localized  localization.Lookup
	categories catalog.CategoryRepository
	pictures   catalog.PictureRepository
	brands     catalog.BrandRepository
	prices     PriceCalculator
	tax        TaxCalculator
	media      PictureURLResolver
	settings   Settings
	logger     *zap.Logger
	now        func() time.Time
}

// NewMapper creates a new Mapper
func NewMapper(
	localized localization.Lookup,
	categories catalog.CategoryRepository,
	pictures catalog.PictureRepository,
	brands catalog.BrandRepository,
	prices PriceCalculator,
	tax TaxCalculator,
	media PictureURLResolver,
	settings Settings,
	logger *zap.Logger,
) *Mapper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mapper{
		localized:  localized,
		categories: categories,
		pictures:   pictures,
		brands:     brands,
		prices:     prices,
		tax:        tax,
		media:      media,
		settings:   settings,
		logger:     logger,
		now:        time.Now,
	}
}

// Map resolves one product record into a feed item. Missing optional
// data (pictures, brand, breadcrumb) degrades by omission; a missing
// taxonomy after the default fallback is fatal for the whole export.
func (m *Mapper) Map(ctx context.Context, record ProductRecord, env *Environment) (*MappedItem, error) {
	product := record.Product

	name := m.localizedField(ctx, product.ID, "name", env.Language, product.Name)

	description := m.mapDescription(ctx, product, env.Language, name)

	taxonomy := ""
	if record.Override != nil {
		taxonomy = record.Override.Taxonomy
	}
	if taxonomy == "" {
		taxonomy = m.settings.DefaultTaxonomy
	}
	if taxonomy == "" {
		return nil, ErrDefaultTaxonomyMissing
	}

	breadcrumb, err := m.mapBreadcrumb(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	imageURL, additionalImages, err := m.mapImages(ctx, product.ID, env.Store.URL)
	if err != nil {
		return nil, err
	}

	price, err := m.mapPrice(ctx, product, env.Currency)
	if err != nil {
		return nil, err
	}

	brand, err := m.mapBrand(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	availability := AvailabilityInStock
	if !product.InStock() {
		availability = AvailabilityOutOfStock
	}

	slug := product.Slug
	if slug == "" {
		slug = product.ID.String()
	}

	item := &MappedItem{
		ID:                  product.ID.String(),
		Title:               truncateRunes(name, maxTitleRunes),
		Description:         description,
		Taxonomy:            taxonomy,
		ProductType:         breadcrumb,
		Link:                env.Store.ProductURL(slug),
		ImageURL:            imageURL,
		AdditionalImageURLs: additionalImages,
		ExpirationDate:      m.now().AddDate(0, 0, m.settings.ExpirationDays).Format(expirationDateLayout),
		Availability:        availability,
		Price:               price,
		Brand:               brand,
		CustomGoods:         record.Override != nil && record.Override.CustomGoods,
	}
	return item, nil
}

// mapDescription falls back from the full description to the short one
// to the product name, then sanitizes the winner
func (m *Mapper) mapDescription(ctx context.Context, product *catalog.Product, languageTag, name string) string {
	description := m.localizedField(ctx, product.ID, "full_description", languageTag, product.FullDescription)
	if description == "" {
		description = m.localizedField(ctx, product.ID, "short_description", languageTag, product.ShortDescription)
	}
	if description == "" {
		description = name
	}
	return SanitizeDescription(description, m.settings.SanitizeEncodedHTML)
}

// mapBreadcrumb builds the store-category breadcrumb of the product's
// first category, root first. Products without a category yield "".
func (m *Mapper) mapBreadcrumb(ctx context.Context, productID uuid.UUID) (string, error) {
	category, err := m.categories.FindFirstByProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	names := []string{category.Name}
	seen := map[uuid.UUID]bool{category.ID: true}
	for category.ParentID != nil {
		parent, err := m.categories.FindByID(ctx, *category.ParentID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				break
			}
			return "", err
		}
		// cycle guard for corrupt trees
		if seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		names = append([]string{parent.Name}, names...)
		category = parent
	}
	return strings.Join(names, breadcrumbSeparator), nil
}

// mapImages returns the primary image URL and up to maxImages-1
// additional URLs, synthesizing a placeholder when no pictures exist
func (m *Mapper) mapImages(ctx context.Context, productID uuid.UUID, storeURL string) (string, []string, error) {
	pictures, err := m.pictures.FindByProduct(ctx, productID, maxImages)
	if err != nil {
		return "", nil, err
	}
	if len(pictures) == 0 {
		url, err := m.media.DefaultPictureURL(ctx, m.settings.PictureSize, storeURL)
		if err != nil {
			return "", nil, err
		}
		return url, nil, nil
	}
	if len(pictures) > maxImages {
		pictures = pictures[:maxImages]
	}

	urls := make([]string, 0, len(pictures))
	for i := range pictures {
		url, err := m.media.PictureURL(ctx, &pictures[i], m.settings.PictureSize, storeURL)
		if err != nil {
			return "", nil, err
		}
		urls = append(urls, url)
	}
	return urls[0], urls[1:], nil
}

// mapPrice computes the display price string, e.g. "20.00 USD"
func (m *Mapper) mapPrice(ctx context.Context, product *catalog.Product, currency *store.Currency) (string, error) {
	var base decimal.Decimal
	if m.settings.PricesConsiderPromotions {
		minPrice, err := m.prices.FinalPrice(ctx, product, 1)
		if err != nil {
			return "", err
		}
		if product.HasTierPrices {
			tierPrice, err := m.prices.FinalPrice(ctx, product, math.MaxInt32)
			if err != nil {
				return "", err
			}
			if tierPrice.LessThan(minPrice) {
				minPrice = tierPrice
			}
		}
		base, err = m.tax.PriceIncludingTax(ctx, product, minPrice)
		if err != nil {
			return "", err
		}
	} else {
		base = product.Price
	}

	converted := currency.ConvertFromPrimary(base)
	if converted.IsNegative() {
		m.logger.Warn("negative price clamped to zero",
			zap.String("product_id", product.ID.String()),
			zap.String("price", converted.String()))
		converted = decimal.Zero
	}

	money, err := valueobject.NewMoney(converted, valueobject.Currency(currency.Code))
	if err != nil {
		return "", err
	}
	money = money.Round(currency.Precision)
	return money.String(currency.Precision), nil
}

// mapBrand returns the first associated brand name, or "" when the
// product has no brand
func (m *Mapper) mapBrand(ctx context.Context, productID uuid.UUID) (string, error) {
	brand, err := m.brands.FindFirstByProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return brand.Name, nil
}

// localizedField returns the translated field value, falling back to
// the entity's own value
func (m *Mapper) localizedField(ctx context.Context, productID uuid.UUID, field, languageTag, fallback string) string {
	value, ok, err := m.localized.String(ctx, productEntityName, productID, field, languageTag)
	if err != nil {
		m.logger.Warn("localized lookup failed, using fallback",
			zap.String("field", field), zap.Error(err))
		return fallback
	}
	if !ok || value == "" {
		return fallback
	}
	return value
}

// truncateRunes cuts s after limit runes. Truncation is by character
// count, not word boundary, as the feed schema requires.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
