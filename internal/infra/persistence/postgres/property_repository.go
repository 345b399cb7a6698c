package postgres

import (
	"context"

	"sejour/internal/domain/entity"
	domainerrors "sejour/internal/domain/errors"
	"sejour/internal/domain/repository"
	"sejour/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultSearchLimit = 20
	defaultPageNumber  = 1
)

// propertyRepository implements the domain.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

// Create persists a new property row.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("property price must be positive")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPropertyCreationFailed.WrapMessage("missing required property information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	// Update the entity with generated values
	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// FindByID retrieves a non-archived property by its unique ID.
func (repo *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyM model.PropertyModel

	err := repo.db.WithContext(ctx).
		Where("id = ? AND archived = ?", id, false).
		First(&propertyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by ID")
	}

	return toPropertyDomain(&propertyM), nil
}

// Search returns non-archived properties matching the filters.
// Results are ordered by creation time then id so page boundaries stay
// stable across calls when the underlying data does not change.
func (repo *propertyRepository) Search(ctx context.Context, filters repository.PropertySearchFilters) ([]*entity.Property, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	pageNumber := filters.PageNumber
	if pageNumber <= 0 {
		pageNumber = defaultPageNumber
	}

	query := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("archived = ?", false)

	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.Description != "" {
		query = query.Where("description ILIKE ?", "%"+filters.Description+"%")
	}

	var propertyModels []*model.PropertyModel
	err := query.
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Offset(limit * (pageNumber - 1)).
		Find(&propertyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search properties")
	}

	properties := make([]*entity.Property, 0, len(propertyModels))
	for _, propertyM := range propertyModels {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties, nil
}

// OwnerID returns the owning user's id for a non-archived property.
func (repo *propertyRepository) OwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var propertyM model.PropertyModel

	err := repo.db.WithContext(ctx).
		Select("id", "owner_id").
		Where("id = ? AND archived = ?", id, false).
		First(&propertyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, repository.ErrPropertyNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find property owner")
	}

	return propertyM.OwnerID, nil
}

// Exists reports whether a property row exists, archived or not.
func (repo *propertyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check property existence")
	}

	return count > 0, nil
}

// Update applies the non-nil fields of the partial update and returns the
// refreshed record.
func (repo *propertyRepository) Update(ctx context.Context, id uuid.UUID, update repository.PropertyUpdate) (*entity.Property, error) {
	values := map[string]any{}
	if update.Title != nil {
		values["title"] = *update.Title
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.Price != nil {
		values["price"] = *update.Price
	}

	if len(values) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.PropertyModel{}).
			Where("id = ? AND archived = ?", id, false).
			Updates(values)
		if result.Error != nil {
			if isCheckConstraintViolation(result.Error) {
				return nil, domainerrors.ErrValidationFailed.WrapMessage("property price must be positive")
			}

			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrPropertyNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Archive marks a property as archived. The row is never removed and its
// images and bookings are kept.
func (repo *propertyRepository) Archive(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ? AND archived = ?", id, false).
		Update("archived", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to archive property")
	}

	// Archiving twice reports not found: the WHERE clause only matches live rows.
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// Lock takes a FOR UPDATE row lock on the property inside the current
// transaction. Concurrent cover toggles on the same property queue up here.
func (repo *propertyRepository) Lock(ctx context.Context, id uuid.UUID) error {
	var propertyM model.PropertyModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&propertyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrPropertyNotFound
		}

		return errors.Wrap(err, "failed to lock property row")
	}

	return nil
}

// --- Mapper Functions ---

// toPropertyDomain converts a GORM PropertyModel to a domain Property entity.
func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	if data == nil {
		return nil
	}

	return &entity.Property{
		ID:          data.ID,
		Title:       data.Title,
		Street:      data.Street,
		City:        data.City,
		State:       data.State,
		Zipcode:     data.Zipcode,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Description: data.Description,
		Price:       data.Price,
		OwnerID:     data.OwnerID,
		Archived:    data.Archived,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPropertyDomain converts a domain Property entity to a GORM PropertyModel.
func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	if data == nil {
		return nil
	}

	return &model.PropertyModel{
		ID:          data.ID,
		Title:       data.Title,
		Street:      data.Street,
		City:        data.City,
		State:       data.State,
		Zipcode:     data.Zipcode,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Description: data.Description,
		Price:       data.Price,
		OwnerID:     data.OwnerID,
		Archived:    data.Archived,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
