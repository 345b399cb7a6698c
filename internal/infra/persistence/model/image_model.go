package model

import (
	"github.com/google/uuid"
)

// ImageModel is the GORM-specific struct for the 'images' table.
type ImageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ImageKey     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_images_on_image_key"`
	PropertyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_images_on_property"`
	IsCoverImage bool      `gorm:"not null;default:false"`

	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}
