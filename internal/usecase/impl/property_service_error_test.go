package impl

import (
	"context"
	"testing"

	domainerrors "sejour/internal/domain/errors"
	"sejour/internal/domain/repository"
	"sejour/internal/domain/service"
	"sejour/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPropertyService_Create_GeocodingFails(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	input := &usecase.CreatePropertyInput{
		Title:  "Cozy loft",
		Street: "nowhere",
		City:   "nowhere",
		State:  "nowhere",
	}

	fx.geocoder.EXPECT().
		Geocode(ctx, input.Street, input.City, input.State).
		Return(nil, errors.New("no results for address"))

	property, err := fx.service.Create(ctx, uuid.New(), input)

	assert.Nil(t, property)
	assert.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)
	assert.Contains(t, err.Error(), "no results for address")
}

func TestPropertyService_Create_RepositoryError(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	input := &usecase.CreatePropertyInput{
		Title:  "Cozy loft",
		Street: "123 Main St",
		City:   "Lisbon",
		State:  "Lisboa",
	}

	fx.geocoder.EXPECT().
		Geocode(ctx, input.Street, input.City, input.State).
		Return(&service.Coordinates{Latitude: "38.7169000", Longitude: "-9.1399000"}, nil)

	fx.propertyRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(errors.New("db error"))

	property, err := fx.service.Create(ctx, uuid.New(), input)

	assert.Nil(t, property)
	assert.Contains(t, err.Error(), "failed to create property")
}

func TestPropertyService_Get_NotFound(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.EXPECT().
		FindByID(ctx, propertyID).
		Return(nil, repository.ErrPropertyNotFound)

	property, err := fx.service.Get(ctx, propertyID)

	assert.Nil(t, property)
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestPropertyService_OwnerID_NotFound(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.EXPECT().
		OwnerID(ctx, propertyID).
		Return(uuid.Nil, repository.ErrPropertyNotFound)

	ownerID, err := fx.service.OwnerID(ctx, propertyID)

	assert.Equal(t, uuid.Nil, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestPropertyService_Update_NotFound(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	newTitle := "Renovated loft"

	fx.propertyRepo.EXPECT().
		Update(ctx, propertyID, repository.PropertyUpdate{Title: &newTitle}).
		Return(nil, repository.ErrPropertyNotFound)

	property, err := fx.service.Update(ctx, propertyID, &usecase.UpdatePropertyInput{Title: &newTitle})

	assert.Nil(t, property)
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestPropertyService_Archive_NotFound(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.EXPECT().
		Archive(ctx, propertyID).
		Return(repository.ErrPropertyNotFound)

	err := fx.service.Archive(ctx, propertyID)

	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestPropertyService_Archive_Twice(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.EXPECT().
		Archive(ctx, propertyID).
		Return(nil).
		Once()
	fx.propertyRepo.EXPECT().
		Archive(ctx, propertyID).
		Return(repository.ErrPropertyNotFound).
		Once()

	assert.NoError(t, fx.service.Archive(ctx, propertyID))
	assert.ErrorIs(t, fx.service.Archive(ctx, propertyID), domainerrors.ErrPropertyNotFound)
}
