package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sejour/internal/domain/entity"
	"sejour/internal/domain/repository"
	"sejour/internal/domain/service"
	mockRepo "sejour/internal/mocks/repository"
	mockSvc "sejour/internal/mocks/service"
	"sejour/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// propertyServiceFixtures holds all test dependencies for property service tests.
type propertyServiceFixtures struct {
	service      usecase.PropertyUsecase
	propertyRepo *mockRepo.MockPropertyRepository
	imageRepo    *mockRepo.MockImageRepository
	geocoder     *mockSvc.MockGeocoder
}

func createTestPropertyService(t *testing.T) propertyServiceFixtures {
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	imageRepo := mockRepo.NewMockImageRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPropertyService(propertyRepo, imageRepo, geocoder, logger)

	return propertyServiceFixtures{
		service:      service,
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
		geocoder:     geocoder,
	}
}

func TestPropertyService_Create_Success(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreatePropertyInput{
		Title:       "Cozy loft",
		Street:      "123 Main St",
		City:        "Lisbon",
		State:       "Lisboa",
		Zipcode:     "1100-001",
		Description: "Bright loft near the river",
		Price:       120.50,
	}

	fx.geocoder.EXPECT().
		Geocode(ctx, input.Street, input.City, input.State).
		Return(&service.Coordinates{Latitude: "38.7169000", Longitude: "-9.1399000"}, nil)

	fx.propertyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Property")).
		Run(func(ctx context.Context, property *entity.Property) {
			property.ID = uuid.New()
		}).
		Return(nil)

	property, err := fx.service.Create(ctx, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, property)
	assert.NotEqual(t, uuid.Nil, property.ID)
	assert.Equal(t, input.Title, property.Title)
	assert.Equal(t, ownerID, property.OwnerID)
	assert.Equal(t, "38.7169000", property.Latitude)
	assert.Equal(t, "-9.1399000", property.Longitude)
	assert.False(t, property.Archived)
}

func TestPropertyService_Search_AnnotatesImages(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	minPrice := 50.0
	input := &usecase.SearchPropertiesInput{
		MinPrice:   &minPrice,
		Limit:      10,
		PageNumber: 1,
	}

	images := []*entity.Image{
		{ID: uuid.New(), ImageKey: "key-1", PropertyID: propertyID, IsCoverImage: true},
		{ID: uuid.New(), ImageKey: "key-2", PropertyID: propertyID},
	}

	fx.propertyRepo.EXPECT().
		Search(ctx, repository.PropertySearchFilters{
			MinPrice:   &minPrice,
			Limit:      10,
			PageNumber: 1,
		}).
		Return([]*entity.Property{{ID: propertyID, Title: "Cozy loft"}}, nil)

	fx.imageRepo.EXPECT().
		FindByProperty(ctx, propertyID).
		Return(images, nil)

	properties, err := fx.service.Search(ctx, input)

	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, images, properties[0].Images)
}

func TestPropertyService_Search_Empty(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()

	fx.propertyRepo.EXPECT().
		Search(ctx, repository.PropertySearchFilters{}).
		Return([]*entity.Property{}, nil)

	properties, err := fx.service.Search(ctx, &usecase.SearchPropertiesInput{})

	require.NoError(t, err)
	assert.Empty(t, properties)
}

func TestPropertyService_Get_Success(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.EXPECT().
		FindByID(ctx, propertyID).
		Return(&entity.Property{ID: propertyID, Title: "Cozy loft"}, nil)

	fx.imageRepo.EXPECT().
		FindByProperty(ctx, propertyID).
		Return([]*entity.Image{}, nil)

	property, err := fx.service.Get(ctx, propertyID)

	require.NoError(t, err)
	assert.Equal(t, propertyID, property.ID)
	assert.Empty(t, property.Images)
}

func TestPropertyService_OwnerID_Success(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	ownerID := uuid.New()

	fx.propertyRepo.EXPECT().
		OwnerID(ctx, propertyID).
		Return(ownerID, nil)

	got, err := fx.service.OwnerID(ctx, propertyID)

	require.NoError(t, err)
	assert.Equal(t, ownerID, got)
}

func TestPropertyService_Update_Success(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	newTitle := "Renovated loft"
	newPrice := 150.0
	input := &usecase.UpdatePropertyInput{
		Title: &newTitle,
		Price: &newPrice,
	}

	fx.propertyRepo.EXPECT().
		Update(ctx, propertyID, repository.PropertyUpdate{
			Title: &newTitle,
			Price: &newPrice,
		}).
		Return(&entity.Property{ID: propertyID, Title: newTitle, Price: newPrice}, nil)

	property, err := fx.service.Update(ctx, propertyID, input)

	require.NoError(t, err)
	assert.Equal(t, newTitle, property.Title)
	assert.Equal(t, newPrice, property.Price)
}

func TestPropertyService_Archive_Success(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.EXPECT().
		Archive(ctx, propertyID).
		Return(nil)

	err := fx.service.Archive(ctx, propertyID)

	require.NoError(t, err)
}
