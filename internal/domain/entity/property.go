// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Property is the core entity for a rental listing.
// Latitude and Longitude are derived once at creation time from the geocoding
// service and stored as decimal strings to avoid floating-point drift.
type Property struct {
	ID          uuid.UUID `json:"id"`          // The unique identifier for the property.
	Title       string    `json:"title"`       // A short, human-readable listing title.
	Street      string    `json:"street"`      // Street portion of the postal address, immutable after creation.
	City        string    `json:"city"`        // City portion of the postal address.
	State       string    `json:"state"`       // State portion of the postal address.
	Zipcode     string    `json:"zipcode"`     // Postal code.
	Latitude    string    `json:"latitude"`    // Geocoded latitude, decimal string.
	Longitude   string    `json:"longitude"`   // Geocoded longitude, decimal string.
	Description string    `json:"description"` // Free-form listing description.
	Price       float64   `json:"price"`       // Nightly price, always positive.
	OwnerID     uuid.UUID `json:"owner_id"`    // The user that created the listing, immutable.
	Archived    bool      `json:"archived"`    // Soft-delete marker; archived listings never surface in search.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this property was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.

	// Images holds the property's image set when the property was loaded
	// through an operation that annotates it (Search, Get). It is not
	// persisted as a column.
	Images []*Image `json:"images,omitempty"`
}
