package entity

import (
	"github.com/google/uuid"
)

// Image is the metadata record for one stored property photo.
// The binary itself lives in object storage under ImageKey; the row only
// correlates the key with its owning property.
//
// Invariant: at most one image per property may have IsCoverImage set at any
// committed instant. The toggle is maintained by the image registry inside a
// single transaction.
type Image struct {
	ID           uuid.UUID `json:"id"`             // The unique identifier for the image record.
	ImageKey     string    `json:"image_key"`      // Opaque storage key, unique across all images.
	PropertyID   uuid.UUID `json:"property_id"`    // The property this image belongs to; must exist at creation time.
	IsCoverImage bool      `json:"is_cover_image"` // Marks the single image chosen for primary display.
}
