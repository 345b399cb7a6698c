package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel is the GORM-specific struct for the 'bookings' table.
type BookingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_on_property"`
	GuestID    uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_on_guest"`
	CreatedAt  time.Time

	Property *PropertyModel `gorm:"foreignKey:PropertyID"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
