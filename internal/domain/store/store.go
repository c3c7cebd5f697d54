package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/shopfeed/backend/internal/domain/shared"
)

// Store is a storefront with its own base URL, primary currency and
// default language
type Store struct {
	shared.BaseEntity
	Name              string    `gorm:"type:varchar(200);not null"`
	URL               string    `gorm:"type:varchar(500);not null"`
	PrimaryCurrencyID uuid.UUID `gorm:"type:uuid;not null"`
	LanguageTag       string    `gorm:"type:varchar(35);not null;default:'en'"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new store
func NewStore(name, url string, primaryCurrencyID uuid.UUID, tag language.Tag) (*Store, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Store name cannot be empty")
	}
	if url == "" {
		return nil, shared.NewDomainError("INVALID_URL", "Store URL cannot be empty")
	}
	return &Store{
		BaseEntity:        shared.NewBaseEntity(),
		Name:              name,
		URL:               url,
		PrimaryCurrencyID: primaryCurrencyID,
		LanguageTag:       tag.String(),
	}, nil
}

// Language returns the store's default language tag. An unparseable
// stored tag falls back to English.
func (s *Store) Language() language.Tag {
	tag, err := language.Parse(s.LanguageTag)
	if err != nil {
		return language.English
	}
	return tag
}

// ProductURL returns the canonical storefront URL for a product slug
func (s *Store) ProductURL(slug string) string {
	return strings.TrimRight(s.URL, "/") + "/" + slug
}

// StoreRepository defines the interface for store persistence
type StoreRepository interface {
	// FindByID finds a store by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)

	// Save creates or updates a store
	Save(ctx context.Context, store *Store) error
}
