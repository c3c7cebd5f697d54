package feed

import (
	"io"

	"github.com/google/uuid"

	"github.com/shopfeed/backend/internal/domain/catalog"
	"github.com/shopfeed/backend/internal/domain/feed"
)

// ExportRequest describes one feed export invocation. The sink is owned
// by the caller for the duration of the call and is never retained.
type ExportRequest struct {
	StoreID uuid.UUID
	Sink    io.Writer
}

// ProductRecord is the resolver's output unit: one exportable product
// together with its optional taxonomy override
type ProductRecord struct {
	Product  *catalog.Product
	Override *feed.TaxonomyOverride
}

// Availability is the feed availability state of an item.
// AvailabilityPreorder is declared for schema completeness but is never
// emitted by the mapper.
type Availability string

const (
	AvailabilityInStock    Availability = "in stock"
	AvailabilityOutOfStock Availability = "out of stock"
	AvailabilityPreorder   Availability = "preorder"
)

// MappedItem is a fully resolved feed item ready for serialization
type MappedItem struct {
	ID                  string
	Title               string
	Description         string
	Taxonomy            string
	ProductType         string
	Link                string
	ImageURL            string
	AdditionalImageURLs []string
	ExpirationDate      string
	Availability        Availability
	Price               string
	Brand               string
	// CustomGoods suppresses the implicit identifier_exists=true;
	// the writer emits identifier_exists=FALSE when set
	CustomGoods bool
}

// Settings is the feed configuration surface consumed by the pipeline
type Settings struct {
	// CurrencyCode selects the display currency of the feed; an
	// unknown or unpublished code falls back to the store's primary
	// currency
	CurrencyCode string
	// DefaultTaxonomy is used when a product has no taxonomy override.
	// Leaving both unset is a fatal misconfiguration.
	DefaultTaxonomy string
	// PricesConsiderPromotions enables promotion-aware pricing (tier
	// prices, tax) instead of the plain list price
	PricesConsiderPromotions bool
	// PictureSize is the edge length in pixels of exported thumbnails
	PictureSize int
	// ExpirationDays is the offset applied to the current date for
	// each item's expiration_date
	ExpirationDays int
	// SanitizeEncodedHTML additionally decodes and re-encodes HTML
	// entities around glyph stripping
	SanitizeEncodedHTML bool
}
