package usecase

import (
	"context"
	"time"

	"sejour/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingUsecase defines the interface for the booking ledger.
//
// The ledger creates booking records and nothing more: no availability
// calendar, no overlap detection, no date-order validation. These are known
// gaps preserved from the original product behavior.
type BookingUsecase interface {
	// Create persists a booking for the guest against the property and
	// returns the created record.
	Create(ctx context.Context, guestID, propertyID uuid.UUID, input *CreateBookingInput) (*entity.Booking, error)
}

// --- Input DTOs ---

// CreateBookingInput defines the stay dates for a new booking.
type CreateBookingInput struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}
