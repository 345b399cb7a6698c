package impl

import (
	"context"
	"log/slog"
	"sync"

	"sejour/internal/domain/entity"
	domainerrors "sejour/internal/domain/errors"
	"sejour/internal/domain/repository"
	"sejour/internal/domain/service"
	"sejour/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// imageService implements the ImageUsecase interface.
type imageService struct {
	txManager    repository.TransactionManager
	propertyRepo repository.PropertyRepository
	imageRepo    repository.ImageRepository
	storage      service.ObjectStorage
	logger       *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(
	txManager repository.TransactionManager,
	propertyRepo repository.PropertyRepository,
	imageRepo repository.ImageRepository,
	storage service.ObjectStorage,
	logger *slog.Logger,
) usecase.ImageUsecase {
	return &imageService{
		txManager:    txManager,
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
		storage:      storage,
		logger:       logger,
	}
}

// UploadBatch stores all files concurrently and registers an image row for
// each stored object.
//
// The store calls form a fan-out/fan-in barrier: every call runs to
// completion whether its siblings succeed or fail, and only then are the
// outcomes mapped back positionally. A storage failure is absorbed into its
// slot as an error descriptor so the remaining N-1 results still reach the
// caller.
func (srv *imageService) UploadBatch(ctx context.Context, propertyID uuid.UUID, files []*usecase.FileUpload) ([]*usecase.UploadResult, error) {
	srv.logger.Info("Uploading image batch", "propertyID", propertyID, "count", len(files))

	keys := make([]string, len(files))
	storeErrs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		keys[i] = uuid.NewString()

		wg.Add(1)
		go func(i int, file *usecase.FileUpload) {
			defer wg.Done()
			storeErrs[i] = srv.storage.Put(ctx, keys[i], file.Data, propertyID.String())
		}(i, file)
	}
	wg.Wait()

	results := make([]*usecase.UploadResult, len(files))
	for i, file := range files {
		if storeErrs[i] != nil {
			srv.logger.Warn("Image store failed",
				"propertyID", propertyID,
				"filename", file.Filename,
				"error", storeErrs[i],
			)
			results[i] = &usecase.UploadResult{
				Filename: file.Filename,
				Err:      errors.Wrapf(storeErrs[i], "error uploading %s", file.Filename),
			}

			continue
		}

		image := &entity.Image{
			ImageKey:   keys[i],
			PropertyID: propertyID,
		}
		if err := srv.imageRepo.Create(ctx, image); err != nil {
			// Row creation is not a per-file storage failure; it aborts the call.
			return nil, errors.Wrap(err, "failed to register image")
		}
		results[i] = &usecase.UploadResult{Image: image}
	}

	return results, nil
}

// GetAllByProperty returns the image set for an existing property.
func (srv *imageService) GetAllByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Image, error) {
	// Archived properties keep their images; only a missing row is an error.
	exists, err := srv.propertyRepo.Exists(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check property existence")
	}
	if !exists {
		return nil, domainerrors.ErrPropertyNotFound
	}

	images, err := srv.imageRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find images by property")
	}

	return images, nil
}

// Delete removes the image row, then drops the blob best-effort. The row is
// authoritative; a stray blob is harmless and logged.
func (srv *imageService) Delete(ctx context.Context, imageKey string) error {
	srv.logger.Info("Deleting image", "imageKey", imageKey)

	if err := srv.imageRepo.DeleteByKey(ctx, imageKey); err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return domainerrors.ErrImageNotFound
		}

		return errors.Wrap(err, "failed to delete image")
	}

	if err := srv.storage.Delete(ctx, imageKey); err != nil {
		srv.logger.Warn("Failed to delete stored object", "imageKey", imageKey, "error", err)
	}

	return nil
}

// SetCover makes the image the property's single cover image.
//
// Clear and set are two statements; run back to back without coordination,
// two concurrent toggles on one property could commit zero or two covers.
// The whole transition therefore runs in one transaction that first takes a
// row lock on the property, serializing toggles per property.
func (srv *imageService) SetCover(ctx context.Context, imageID, propertyID uuid.UUID) (*entity.Image, error) {
	srv.logger.Info("Setting cover image", "imageID", imageID, "propertyID", propertyID)

	var cover *entity.Image

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PropertyRepo().Lock(ctx, propertyID); err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return domainerrors.ErrPropertyNotFound
			}

			return errors.Wrap(err, "failed to lock property")
		}

		imageRepo := repoFactory.ImageRepo()

		if err := imageRepo.ClearCover(ctx, propertyID); err != nil {
			return errors.Wrap(err, "failed to clear current cover")
		}

		image, err := imageRepo.MarkCover(ctx, imageID)
		if err != nil {
			if errors.Is(err, repository.ErrImageNotFound) {
				return domainerrors.ErrImageNotFound
			}

			return errors.Wrap(err, "failed to mark cover")
		}
		// A stray id pointing at another property's image must not survive;
		// the error rolls the whole toggle back.
		if image.PropertyID != propertyID {
			return domainerrors.ErrImageNotFound
		}
		cover = image

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cover, nil
}
