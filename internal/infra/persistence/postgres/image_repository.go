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
)

// imageRepository implements the domain.ImageRepository interface.
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

// Create persists a new image row.
func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	imageM := fromImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPropertyNotFound
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrImageCreationFailed.WrapMessage("image key already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create image")
	}

	// Update the entity with generated values
	image.ID = imageM.ID

	return nil
}

// FindByProperty returns the image set for a property, ordered by id.
func (repo *imageRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Image, error) {
	var imageModels []*model.ImageModel

	err := repo.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("id ASC").
		Find(&imageModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find images by property")
	}

	images := make([]*entity.Image, 0, len(imageModels))
	for _, imageM := range imageModels {
		images = append(images, toImageDomain(imageM))
	}

	return images, nil
}

// DeleteByKey removes the image row with the given storage key.
func (repo *imageRepository) DeleteByKey(ctx context.Context, imageKey string) error {
	result := repo.db.WithContext(ctx).
		Where("image_key = ?", imageKey).
		Delete(&model.ImageModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete image")
	}

	// If no rows were affected, it means the image key was not found.
	if result.RowsAffected == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

// ClearCover unsets the cover flag on the current cover image, if any.
// At most one row matches, by invariant.
func (repo *imageRepository) ClearCover(ctx context.Context, propertyID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ImageModel{}).
		Where("property_id = ? AND is_cover_image = ?", propertyID, true).
		Update("is_cover_image", false).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear cover image")
	}

	return nil
}

// MarkCover sets the cover flag on the image with the given id.
func (repo *imageRepository) MarkCover(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ImageModel{}).
		Where("id = ?", id).
		Update("is_cover_image", true)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to mark cover image")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrImageNotFound
	}

	var imageM model.ImageModel
	if err := repo.db.WithContext(ctx).First(&imageM, "id = ?", id).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload cover image")
	}

	return toImageDomain(&imageM), nil
}

// --- Mapper Functions ---

// toImageDomain converts a GORM ImageModel to a domain Image entity.
func toImageDomain(data *model.ImageModel) *entity.Image {
	if data == nil {
		return nil
	}

	return &entity.Image{
		ID:           data.ID,
		ImageKey:     data.ImageKey,
		PropertyID:   data.PropertyID,
		IsCoverImage: data.IsCoverImage,
	}
}

// fromImageDomain converts a domain Image entity to a GORM ImageModel.
func fromImageDomain(data *entity.Image) *model.ImageModel {
	if data == nil {
		return nil
	}

	return &model.ImageModel{
		ID:           data.ID,
		ImageKey:     data.ImageKey,
		PropertyID:   data.PropertyID,
		IsCoverImage: data.IsCoverImage,
	}
}
