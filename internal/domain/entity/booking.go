package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking ties a guest to a property for a date range.
//
// The ledger performs no overlap detection between bookings for the same
// property, and EndDate is not checked against StartDate. Both are known
// gaps carried over deliberately; closing them would change the observable
// product behavior.
type Booking struct {
	ID         uuid.UUID `json:"id"`          // The unique identifier for the booking.
	StartDate  time.Time `json:"start_date"`  // First day of the stay.
	EndDate    time.Time `json:"end_date"`    // Last day of the stay.
	PropertyID uuid.UUID `json:"property_id"` // The booked property.
	GuestID    uuid.UUID `json:"guest_id"`    // The user making the booking.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this booking was created.
}
