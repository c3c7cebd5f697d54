package localization

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopfeed/backend/internal/domain/shared"
)

// LocalizedValue is a translated field value keyed by entity, field and
// language
type LocalizedValue struct {
	shared.BaseEntity
	EntityName  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_localized_key,priority:1"`
	EntityID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_localized_key,priority:2"`
	Field       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_localized_key,priority:3"`
	LanguageTag string    `gorm:"type:varchar(35);not null;uniqueIndex:idx_localized_key,priority:4"`
	Value       string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (LocalizedValue) TableName() string {
	return "localized_values"
}

// NewLocalizedValue creates a new localized value
func NewLocalizedValue(entityName string, entityID uuid.UUID, field, languageTag, value string) (*LocalizedValue, error) {
	if entityName == "" || field == "" || languageTag == "" {
		return nil, shared.NewDomainError("INVALID_KEY", "Entity name, field and language tag are required")
	}
	return &LocalizedValue{
		BaseEntity:  shared.NewBaseEntity(),
		EntityName:  entityName,
		EntityID:    entityID,
		Field:       field,
		LanguageTag: languageTag,
		Value:       value,
	}, nil
}

// Lookup resolves translated field values. Implementations return
// ok=false when no translation exists for the key; callers then fall
// back to the entity's own field.
type Lookup interface {
	String(ctx context.Context, entityName string, entityID uuid.UUID, field, languageTag string) (value string, ok bool, err error)
}

// Repository defines the interface for localized value persistence
type Repository interface {
	Lookup

	// Save creates or updates a localized value
	Save(ctx context.Context, value *LocalizedValue) error
}
