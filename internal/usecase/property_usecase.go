// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"sejour/internal/domain/entity"

	"github.com/google/uuid"
)

// PropertyUsecase defines the interface for the property catalog.
// Authorization (ownership) is enforced by the caller using OwnerID; the
// catalog itself only owns record semantics.
type PropertyUsecase interface {
	// Create geocodes the address and persists a new listing. Geocoding
	// failure fails the creation; a property is never stored without a location.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreatePropertyInput) (*entity.Property, error)

	// Search returns non-archived listings matching the filters, each
	// annotated with its image set. No match yields an empty slice, not an error.
	Search(ctx context.Context, input *SearchPropertiesInput) ([]*entity.Property, error)

	// Get returns one non-archived listing with its images.
	Get(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// OwnerID returns the owning user's id for caller-side authorization checks.
	OwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

	// Update applies the provided fields only.
	Update(ctx context.Context, id uuid.UUID, input *UpdatePropertyInput) (*entity.Property, error)

	// Archive soft-deletes the listing. Its images and bookings are retained.
	Archive(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreatePropertyInput defines the data required to create a property.
// Latitude and longitude are not part of the input; they are derived from
// the address at creation time.
type CreatePropertyInput struct {
	Title       string  `json:"title" validate:"required"`
	Street      string  `json:"street" validate:"required"`
	City        string  `json:"city" validate:"required"`
	State       string  `json:"state" validate:"required"`
	Zipcode     string  `json:"zipcode"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// SearchPropertiesInput defines the optional search filters and pagination.
type SearchPropertiesInput struct {
	MinPrice    *float64 `json:"min_price,omitempty"`
	MaxPrice    *float64 `json:"max_price,omitempty"`
	Description string   `json:"description,omitempty"`
	Limit       int      `json:"limit,omitempty"`
	PageNumber  int      `json:"page_number,omitempty"`
}

// UpdatePropertyInput defines the partial update payload. Nil means "leave
// unchanged"; a pointer to the zero value means "set to the zero value".
type UpdatePropertyInput struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitnil,gt=0"`
}
