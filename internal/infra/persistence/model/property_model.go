// Package model contains the GORM-specific structs mapping entities to tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel is the GORM-specific struct for the 'properties' table.
// Latitude and longitude are decimal columns read and written as strings.
type PropertyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Street      string    `gorm:"type:varchar(255);not null"`
	City        string    `gorm:"type:varchar(255);not null"`
	State       string    `gorm:"type:varchar(100);not null"`
	Zipcode     string    `gorm:"type:varchar(20);not null"`
	Latitude    string    `gorm:"type:decimal(10,7);not null"`
	Longitude   string    `gorm:"type:decimal(10,7);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       float64   `gorm:"type:numeric(10,2);not null;check:price > 0"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_properties_on_owner"`
	Archived    bool      `gorm:"not null;default:false;index:idx_properties_on_archived"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
