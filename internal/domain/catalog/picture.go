package catalog

import (
	"github.com/google/uuid"

	"github.com/shopfeed/backend/internal/domain/shared"
)

// Picture is an image attached to a product, stored by path relative to
// the media root
type Picture struct {
	shared.BaseEntity
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Path         string    `gorm:"type:varchar(500);not null"`
	MimeType     string    `gorm:"type:varchar(50)"`
	DisplayOrder int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Picture) TableName() string {
	return "pictures"
}

// NewPicture creates a new picture record
func NewPicture(productID uuid.UUID, path, mimeType string, displayOrder int) (*Picture, error) {
	if path == "" {
		return nil, shared.NewDomainError("INVALID_PATH", "Picture path cannot be empty")
	}
	return &Picture{
		BaseEntity:   shared.NewBaseEntity(),
		ProductID:    productID,
		Path:         path,
		MimeType:     mimeType,
		DisplayOrder: displayOrder,
	}, nil
}
