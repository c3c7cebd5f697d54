package feed

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/shopfeed/backend/internal/domain/catalog"
	feeddomain "github.com/shopfeed/backend/internal/domain/feed"
	"github.com/shopfeed/backend/internal/domain/store"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindVisibleByStore(ctx context.Context, storeID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAssociatedChildren(ctx context.Context, parentID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveAssociation(ctx context.Context, association *catalog.ProductAssociation) error {
	args := m.Called(ctx, association)
	return args.Error(0)
}

// MockOverrideRepository is a mock implementation of feed.OverrideRepository
type MockOverrideRepository struct {
	mock.Mock
}

func (m *MockOverrideRepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*feeddomain.TaxonomyOverride, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feeddomain.TaxonomyOverride), args.Error(1)
}

func (m *MockOverrideRepository) Save(ctx context.Context, override *feeddomain.TaxonomyOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindFirstByProduct(ctx context.Context, productID uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SaveProductCategory(ctx context.Context, mapping *catalog.ProductCategory) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

// MockPictureRepository is a mock implementation of catalog.PictureRepository
type MockPictureRepository struct {
	mock.Mock
}

func (m *MockPictureRepository) FindByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]catalog.Picture, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Picture), args.Error(1)
}

func (m *MockPictureRepository) Save(ctx context.Context, picture *catalog.Picture) error {
	args := m.Called(ctx, picture)
	return args.Error(0)
}

// MockBrandRepository is a mock implementation of catalog.BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) FindFirstByProduct(ctx context.Context, productID uuid.UUID) (*catalog.Brand, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) SaveProductBrand(ctx context.Context, productBrand *catalog.ProductBrand) error {
	args := m.Called(ctx, productBrand)
	return args.Error(0)
}

// MockStoreRepository is a mock implementation of store.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) Save(ctx context.Context, st *store.Store) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

// MockCurrencyRepository is a mock implementation of store.CurrencyRepository
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindByCode(ctx context.Context, code string) (*store.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) Save(ctx context.Context, currency *store.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

// MockLocalizedLookup is a mock implementation of localization.Lookup
type MockLocalizedLookup struct {
	mock.Mock
}

func (m *MockLocalizedLookup) String(ctx context.Context, entityName string, entityID uuid.UUID, field, languageTag string) (string, bool, error) {
	args := m.Called(ctx, entityName, entityID, field, languageTag)
	return args.String(0), args.Bool(1), args.Error(2)
}

// MockPriceCalculator is a mock implementation of PriceCalculator
type MockPriceCalculator struct {
	mock.Mock
}

func (m *MockPriceCalculator) FinalPrice(ctx context.Context, product *catalog.Product, quantity int) (decimal.Decimal, error) {
	args := m.Called(ctx, product, quantity)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockTaxCalculator is a mock implementation of TaxCalculator
type MockTaxCalculator struct {
	mock.Mock
}

func (m *MockTaxCalculator) PriceIncludingTax(ctx context.Context, product *catalog.Product, price decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, product, price)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockPictureURLResolver is a mock implementation of PictureURLResolver
type MockPictureURLResolver struct {
	mock.Mock
}

func (m *MockPictureURLResolver) PictureURL(ctx context.Context, picture *catalog.Picture, size int, storeURL string) (string, error) {
	args := m.Called(ctx, picture, size, storeURL)
	return args.String(0), args.Error(1)
}

func (m *MockPictureURLResolver) DefaultPictureURL(ctx context.Context, size int, storeURL string) (string, error) {
	args := m.Called(ctx, size, storeURL)
	return args.String(0), args.Error(1)
}
