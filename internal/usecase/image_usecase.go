package usecase

import (
	"context"

	"sejour/internal/domain/entity"

	"github.com/google/uuid"
)

// ImageUsecase defines the interface for the image registry. It owns the
// cover-image invariant and the partial-failure batch upload.
type ImageUsecase interface {
	// UploadBatch stores every file concurrently, waits for all of them to
	// settle, then registers an image row for each success. The result slice
	// is position-aligned with the input: element i is either the created
	// image for files[i] or the storage error descriptor for it. One file's
	// storage failure never aborts the others; a row-creation failure aborts
	// the whole call.
	UploadBatch(ctx context.Context, propertyID uuid.UUID, files []*FileUpload) ([]*UploadResult, error)

	// GetAllByProperty returns the image set for an existing property.
	// The property may be archived; only a missing row is an error.
	GetAllByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Image, error)

	// Delete removes the image row with the given storage key.
	Delete(ctx context.Context, imageKey string) error

	// SetCover makes the image the property's single cover. The clear-then-set
	// pair runs inside one transaction under a property row lock, so
	// concurrent toggles can never commit zero or two covers.
	SetCover(ctx context.Context, imageID, propertyID uuid.UUID) (*entity.Image, error)
}

// --- DTOs ---

// FileUpload is one file received by the upload endpoint.
type FileUpload struct {
	Filename    string // Original client-side filename, echoed in error descriptors.
	ContentType string
	Data        []byte
}

// UploadResult is one element of the batch result. Exactly one of Image and
// Err is set.
type UploadResult struct {
	Image    *entity.Image
	Filename string // Original filename, set on failure.
	Err      error
}

// Failed reports whether this element is an error descriptor.
func (r *UploadResult) Failed() bool {
	return r.Err != nil
}
