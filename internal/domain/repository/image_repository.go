package repository

import (
	"context"

	"sejour/internal/domain/entity"
	"sejour/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for image persistence.
var (
	// ErrImageNotFound is returned when an image is not found.
	ErrImageNotFound = errors.New("image not found")
)

// ImageRepository defines the interface for image-related database operations.
//
// The cover-image invariant (at most one cover per property) is maintained by
// running ClearCover and MarkCover inside one transaction; see the image
// registry use case.
type ImageRepository interface {
	// Create persists a new image row and fills in the generated ID.
	// The property is expected to exist; a foreign key violation surfaces
	// as ErrPropertyNotFound.
	Create(ctx context.Context, image *entity.Image) error

	// FindByProperty returns the (possibly empty) image set for a property,
	// ordered by id for a stable listing.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Image, error)

	// DeleteByKey removes the image row with the given storage key.
	// Returns ErrImageNotFound if no such key exists.
	DeleteByKey(ctx context.Context, imageKey string) error

	// ClearCover unsets the cover flag on whichever image currently holds it
	// for the property. Clearing when no cover is set is not an error.
	ClearCover(ctx context.Context, propertyID uuid.UUID) error

	// MarkCover sets the cover flag on the image with the given id and
	// returns the updated record. Returns ErrImageNotFound if the id does
	// not resolve to an existing image.
	MarkCover(ctx context.Context, id uuid.UUID) (*entity.Image, error)
}
