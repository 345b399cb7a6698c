// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"sejour/internal/domain/entity"
	domainerrors "sejour/internal/domain/errors"
	"sejour/internal/domain/repository"
	"sejour/internal/domain/service"
	"sejour/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	propertyRepo repository.PropertyRepository
	imageRepo    repository.ImageRepository
	geocoder     service.Geocoder
	logger       *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(
	propertyRepo repository.PropertyRepository,
	imageRepo repository.ImageRepository,
	geocoder service.Geocoder,
	logger *slog.Logger,
) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
		geocoder:     geocoder,
		logger:       logger,
	}
}

// Create geocodes the address and persists a new listing.
func (srv *propertyService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	srv.logger.Info("Creating property", "ownerID", ownerID, "city", input.City)

	// Resolve the location first; a listing is never stored without one.
	coords, err := srv.geocoder.Geocode(ctx, input.Street, input.City, input.State)
	if err != nil {
		return nil, domainerrors.ErrGeocodingFailed.WrapMessage(err.Error())
	}

	property := &entity.Property{
		Title:       input.Title,
		Street:      input.Street,
		City:        input.City,
		State:       input.State,
		Zipcode:     input.Zipcode,
		Latitude:    coords.Latitude,
		Longitude:   coords.Longitude,
		Description: input.Description,
		Price:       input.Price,
		OwnerID:     ownerID,
	}

	if err := srv.propertyRepo.Create(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to create property")
	}

	return property, nil
}

// Search returns matching non-archived listings annotated with their images.
func (srv *propertyService) Search(ctx context.Context, input *usecase.SearchPropertiesInput) ([]*entity.Property, error) {
	filters := repository.PropertySearchFilters{
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		Description: input.Description,
		Limit:       input.Limit,
		PageNumber:  input.PageNumber,
	}

	properties, err := srv.propertyRepo.Search(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search properties")
	}

	for _, property := range properties {
		images, err := srv.imageRepo.FindByProperty(ctx, property.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load property images")
		}
		property.Images = images
	}

	return properties, nil
}

// Get returns one non-archived listing with its images.
func (srv *propertyService) Get(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	property, err := srv.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	images, err := srv.imageRepo.FindByProperty(ctx, property.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load property images")
	}
	property.Images = images

	return property, nil
}

// OwnerID returns the owning user's id for an authorization check by the caller.
func (srv *propertyService) OwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	ownerID, err := srv.propertyRepo.OwnerID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return uuid.Nil, domainerrors.ErrPropertyNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find property owner")
	}

	return ownerID, nil
}

// Update applies the provided fields only.
func (srv *propertyService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdatePropertyInput) (*entity.Property, error) {
	srv.logger.Info("Updating property", "propertyID", id)

	update := repository.PropertyUpdate{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
	}

	property, err := srv.propertyRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to update property")
	}

	return property, nil
}

// Archive soft-deletes the listing.
func (srv *propertyService) Archive(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Archiving property", "propertyID", id)

	if err := srv.propertyRepo.Archive(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}

		return errors.Wrap(err, "failed to archive property")
	}

	return nil
}
