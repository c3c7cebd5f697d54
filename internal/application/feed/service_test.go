package feed

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopfeed/backend/internal/domain/catalog"
	"github.com/shopfeed/backend/internal/domain/shared"
	"github.com/shopfeed/backend/internal/domain/store"
)

type serviceFixture struct {
	*mapperFixture
	products   *MockProductRepository
	overrides  *MockOverrideRepository
	stores     *MockStoreRepository
	currencies *MockCurrencyRepository
	store      *store.Store
	currency   *store.Currency
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	usd, err := store.NewCurrency("USD", decimal.NewFromInt(1), 2)
	require.NoError(t, err)
	st := &store.Store{
		BaseEntity:        shared.NewBaseEntity(),
		Name:              "Example Shop",
		URL:               "https://shop.example.com",
		PrimaryCurrencyID: usd.ID,
		LanguageTag:       "en",
	}
	return &serviceFixture{
		mapperFixture: newMapperFixture(),
		products:      new(MockProductRepository),
		overrides:     new(MockOverrideRepository),
		stores:        new(MockStoreRepository),
		currencies:    new(MockCurrencyRepository),
		store:         st,
		currency:      usd,
	}
}

func (f *serviceFixture) service(t *testing.T) *Service {
	t.Helper()
	f.stores.On("FindByID", mock.Anything, f.store.ID).Return(f.store, nil)
	f.currencies.On("FindByID", mock.Anything, f.currency.ID).Return(f.currency, nil)
	resolver := NewResolver(f.products, f.overrides)
	return NewService(f.stores, f.currencies, resolver, f.mapper(t), f.settings, nil)
}

func TestService_GenerateWidgetRoundTrip(t *testing.T) {
	fixture := newServiceFixture(t)

	widget := newTestProduct(t, fixture.store.ID, "Widget", catalog.ProductTypeSimple)
	require.NoError(t, widget.SetPrice(decimal.RequireFromString("19.999")))

	fixture.products.On("FindVisibleByStore", mock.Anything, fixture.store.ID).
		Return([]catalog.Product{widget}, nil)
	fixture.overrides.On("FindByProduct", mock.Anything, widget.ID).
		Return(nil, shared.ErrNotFound)
	fixture.stubMissingOptional()

	var buf bytes.Buffer
	err := fixture.service(t).Generate(context.Background(), ExportRequest{
		StoreID: fixture.store.ID,
		Sink:    &buf,
	})

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "<title><![CDATA[Widget]]></title>")
	assert.Contains(t, output, "<description><![CDATA[Widget]]></description>")
	assert.Contains(t, output, "<g:google_product_category><![CDATA[Toys]]></g:google_product_category>")
	assert.Contains(t, output, "<g:price>20.00 USD</g:price>")
	assert.Contains(t, output, "<g:availability>in stock</g:availability>")
	assert.Contains(t, output, "<link>https://shop.example.com/widget</link>")
	assert.Contains(t, output, "</rss>")
}

func TestService_GenerateExpandsGroupedProducts(t *testing.T) {
	fixture := newServiceFixture(t)

	parent := newTestProduct(t, fixture.store.ID, "Bundle", catalog.ProductTypeGrouped)
	childA := newTestProduct(t, fixture.store.ID, "Part A", catalog.ProductTypeSimple)
	childB := newTestProduct(t, fixture.store.ID, "Part B", catalog.ProductTypeSimple)

	fixture.products.On("FindVisibleByStore", mock.Anything, fixture.store.ID).
		Return([]catalog.Product{parent}, nil)
	fixture.products.On("FindAssociatedChildren", mock.Anything, parent.ID).
		Return([]catalog.Product{childA, childB}, nil)
	fixture.overrides.On("FindByProduct", mock.Anything, mock.Anything).
		Return(nil, shared.ErrNotFound)
	fixture.stubMissingOptional()

	var buf bytes.Buffer
	err := fixture.service(t).Generate(context.Background(), ExportRequest{
		StoreID: fixture.store.ID,
		Sink:    &buf,
	})

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "<title><![CDATA[Part A]]></title>")
	assert.Contains(t, output, "<title><![CDATA[Part B]]></title>")
	assert.NotContains(t, output, "<title><![CDATA[Bundle]]></title>")
}

func TestService_GenerateMisconfigurationYieldsNoItems(t *testing.T) {
	fixture := newServiceFixture(t)
	fixture.settings.DefaultTaxonomy = ""

	widget := newTestProduct(t, fixture.store.ID, "Widget", catalog.ProductTypeSimple)
	fixture.products.On("FindVisibleByStore", mock.Anything, fixture.store.ID).
		Return([]catalog.Product{widget}, nil)
	fixture.overrides.On("FindByProduct", mock.Anything, widget.ID).
		Return(nil, shared.ErrNotFound)
	fixture.stubMissingOptional()

	var buf bytes.Buffer
	err := fixture.service(t).Generate(context.Background(), ExportRequest{
		StoreID: fixture.store.ID,
		Sink:    &buf,
	})

	assert.ErrorIs(t, err, ErrDefaultTaxonomyMissing)
	assert.NotContains(t, buf.String(), "<item>")
	// the writer still closed its envelope on the error path
	assert.Contains(t, buf.String(), "</rss>")
}

func TestService_GenerateConfiguredCurrency(t *testing.T) {
	fixture := newServiceFixture(t)
	fixture.settings.CurrencyCode = "EUR"

	eur, err := store.NewCurrency("EUR", decimal.RequireFromString("0.9"), 2)
	require.NoError(t, err)
	fixture.currencies.On("FindByCode", mock.Anything, "EUR").Return(eur, nil)

	widget := newTestProduct(t, fixture.store.ID, "Widget", catalog.ProductTypeSimple)
	require.NoError(t, widget.SetPrice(decimal.NewFromInt(10)))
	fixture.products.On("FindVisibleByStore", mock.Anything, fixture.store.ID).
		Return([]catalog.Product{widget}, nil)
	fixture.overrides.On("FindByProduct", mock.Anything, widget.ID).
		Return(nil, shared.ErrNotFound)
	fixture.stubMissingOptional()

	var buf bytes.Buffer
	err = fixture.service(t).Generate(context.Background(), ExportRequest{
		StoreID: fixture.store.ID,
		Sink:    &buf,
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<g:price>9.00 EUR</g:price>")
}

func TestService_GenerateUnknownCurrencyFallsBackToPrimary(t *testing.T) {
	fixture := newServiceFixture(t)
	fixture.settings.CurrencyCode = "XXX"
	fixture.currencies.On("FindByCode", mock.Anything, "XXX").
		Return(nil, shared.ErrNotFound)

	widget := newTestProduct(t, fixture.store.ID, "Widget", catalog.ProductTypeSimple)
	require.NoError(t, widget.SetPrice(decimal.NewFromInt(10)))
	fixture.products.On("FindVisibleByStore", mock.Anything, fixture.store.ID).
		Return([]catalog.Product{widget}, nil)
	fixture.overrides.On("FindByProduct", mock.Anything, widget.ID).
		Return(nil, shared.ErrNotFound)
	fixture.stubMissingOptional()

	var buf bytes.Buffer
	err := fixture.service(t).Generate(context.Background(), ExportRequest{
		StoreID: fixture.store.ID,
		Sink:    &buf,
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<g:price>10.00 USD</g:price>")
}

func TestService_GenerateRejectsMissingInput(t *testing.T) {
	fixture := newServiceFixture(t)
	service := NewService(fixture.stores, fixture.currencies,
		NewResolver(fixture.products, fixture.overrides), fixture.mapper(t), fixture.settings, nil)

	err := service.Generate(context.Background(), ExportRequest{StoreID: fixture.store.ID})
	assert.ErrorIs(t, err, ErrMissingSink)

	err = service.Generate(context.Background(), ExportRequest{Sink: &bytes.Buffer{}})
	assert.ErrorIs(t, err, ErrMissingStore)
}
