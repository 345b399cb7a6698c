package repository

import (
	"context"

	"sejour/internal/domain/entity"
)

// BookingRepository defines the interface for booking-related database operations.
//
// The ledger intentionally performs no availability or overlap checks; a
// booking row is created as long as the referenced property and guest exist.
type BookingRepository interface {
	// Create persists a new booking and fills in generated fields.
	// A foreign key violation on the property surfaces as ErrPropertyNotFound.
	Create(ctx context.Context, booking *entity.Booking) error
}
