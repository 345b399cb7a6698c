// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"sejour/internal/domain/entity"
	"sejour/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for property persistence.
var (
	// ErrPropertyNotFound is returned when a property does not exist or is archived.
	ErrPropertyNotFound = errors.New("property not found")
)

// PropertySearchFilters narrows and paginates property searches.
// Nil filter fields are ignored; Limit and PageNumber fall back to the
// repository defaults when zero.
type PropertySearchFilters struct {
	MinPrice    *float64 // Inclusive lower price bound.
	MaxPrice    *float64 // Inclusive upper price bound.
	Description string   // Case-insensitive substring match when non-empty.
	Limit       int      // Page size.
	PageNumber  int      // 1-based page number; offset = Limit * (PageNumber - 1).
}

// PropertyUpdate carries a partial update. Nil fields are left unchanged,
// so "set to empty string" and "leave as is" stay distinguishable.
type PropertyUpdate struct {
	Title       *string
	Description *string
	Price       *float64
}

// PropertyRepository defines the interface for property-related database operations.
type PropertyRepository interface {
	// Create persists a new property and fills in generated fields (ID, timestamps).
	Create(ctx context.Context, property *entity.Property) error

	// FindByID retrieves a non-archived property by its unique ID.
	// Returns ErrPropertyNotFound if the property is absent or archived.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// Search returns non-archived properties matching the filters, ordered by
	// a stable key (creation time, then id) so pagination is deterministic.
	// An empty result is not an error.
	Search(ctx context.Context, filters PropertySearchFilters) ([]*entity.Property, error)

	// OwnerID returns the owning user's id for a non-archived property.
	// Returns ErrPropertyNotFound if the property is absent or archived.
	OwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

	// Exists reports whether a property row exists at all, archived or not.
	// Used by the image registry, which treats archived properties as valid parents.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Update applies the non-nil fields of the partial update.
	// Returns ErrPropertyNotFound if the property is absent or archived.
	Update(ctx context.Context, id uuid.UUID, update PropertyUpdate) (*entity.Property, error)

	// Archive marks a property as archived (soft delete). Children are kept.
	// Archiving an already archived or absent property returns ErrPropertyNotFound.
	Archive(ctx context.Context, id uuid.UUID) error

	// Lock acquires a row-level lock on the property for the duration of the
	// enclosing transaction. Cover toggles take this lock first so that the
	// clear-then-set pair is serialized per property.
	// Returns ErrPropertyNotFound if the row does not exist.
	Lock(ctx context.Context, id uuid.UUID) error
}
