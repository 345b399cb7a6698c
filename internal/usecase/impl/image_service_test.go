package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sejour/internal/domain/entity"
	domainerrors "sejour/internal/domain/errors"
	"sejour/internal/domain/repository"
	mockRepo "sejour/internal/mocks/repository"
	mockSvc "sejour/internal/mocks/service"
	"sejour/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// imageServiceFixtures holds all test dependencies for image service tests.
type imageServiceFixtures struct {
	service      usecase.ImageUsecase
	txManager    *mockRepo.MockTransactionManager
	propertyRepo *mockRepo.MockPropertyRepository
	imageRepo    *mockRepo.MockImageRepository
	storage      *mockSvc.MockObjectStorage
}

func createTestImageService(t *testing.T) imageServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	imageRepo := mockRepo.NewMockImageRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewImageService(txManager, propertyRepo, imageRepo, storage, logger)

	return imageServiceFixtures{
		service:      service,
		txManager:    txManager,
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
		storage:      storage,
	}
}

func TestImageService_UploadBatch_AllSucceed(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	files := []*usecase.FileUpload{
		{Filename: "front.jpg", ContentType: "image/jpeg", Data: []byte("front")},
		{Filename: "back.png", ContentType: "image/png", Data: []byte("back")},
	}

	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), files[0].Data, propertyID.String()).
		Return(nil)
	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), files[1].Data, propertyID.String()).
		Return(nil)

	fx.imageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Image")).
		Run(func(ctx context.Context, image *entity.Image) {
			image.ID = uuid.New()
		}).
		Return(nil).
		Times(2)

	results, err := fx.service.UploadBatch(ctx, propertyID, files)

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.False(t, result.Failed())
		require.NotNil(t, result.Image)
		assert.NotEqual(t, uuid.Nil, result.Image.ID)
		assert.NotEmpty(t, result.Image.ImageKey)
		assert.Equal(t, propertyID, result.Image.PropertyID)
		assert.False(t, result.Image.IsCoverImage)
	}
	assert.NotEqual(t, results[0].Image.ImageKey, results[1].Image.ImageKey)
}

// One storage failure in the middle of the batch must not disturb its
// neighbors, and the result slice must stay aligned with the input order.
func TestImageService_UploadBatch_PartialFailure(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	files := []*usecase.FileUpload{
		{Filename: "one.jpg", ContentType: "image/jpeg", Data: []byte("one")},
		{Filename: "two.jpg", ContentType: "image/jpeg", Data: []byte("two")},
		{Filename: "three.png", ContentType: "image/png", Data: []byte("three")},
	}

	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), files[0].Data, propertyID.String()).
		Return(nil)
	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), files[1].Data, propertyID.String()).
		Return(errors.New("bucket write refused"))
	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), files[2].Data, propertyID.String()).
		Return(nil)

	fx.imageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Image")).
		Run(func(ctx context.Context, image *entity.Image) {
			image.ID = uuid.New()
		}).
		Return(nil).
		Times(2)

	results, err := fx.service.UploadBatch(ctx, propertyID, files)

	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.False(t, results[0].Failed())
	assert.False(t, results[2].Failed())

	require.True(t, results[1].Failed())
	assert.Nil(t, results[1].Image)
	assert.Equal(t, "two.jpg", results[1].Filename)
	assert.Contains(t, results[1].Err.Error(), "error uploading two.jpg")
	assert.Contains(t, results[1].Err.Error(), "bucket write refused")
}

func TestImageService_UploadBatch_RowCreationAborts(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	files := []*usecase.FileUpload{
		{Filename: "one.jpg", ContentType: "image/jpeg", Data: []byte("one")},
	}

	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), files[0].Data, propertyID.String()).
		Return(nil)

	fx.imageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Image")).
		Return(errors.New("db error"))

	results, err := fx.service.UploadBatch(ctx, propertyID, files)

	assert.Nil(t, results)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register image")
}

func TestImageService_UploadBatch_Empty(t *testing.T) {
	fx := createTestImageService(t)

	results, err := fx.service.UploadBatch(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestImageService_GetAllByProperty_Success(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	images := []*entity.Image{
		{ID: uuid.New(), ImageKey: "key-1", PropertyID: propertyID, IsCoverImage: true},
	}

	fx.propertyRepo.EXPECT().
		Exists(ctx, propertyID).
		Return(true, nil)

	fx.imageRepo.EXPECT().
		FindByProperty(ctx, propertyID).
		Return(images, nil)

	got, err := fx.service.GetAllByProperty(ctx, propertyID)

	require.NoError(t, err)
	assert.Equal(t, images, got)
}

func TestImageService_GetAllByProperty_PropertyMissing(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.EXPECT().
		Exists(ctx, propertyID).
		Return(false, nil)

	images, err := fx.service.GetAllByProperty(ctx, propertyID)

	assert.Nil(t, images)
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestImageService_Delete_Success(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	imageKey := uuid.NewString()

	fx.imageRepo.EXPECT().
		DeleteByKey(ctx, imageKey).
		Return(nil)

	fx.storage.EXPECT().
		Delete(ctx, imageKey).
		Return(nil)

	err := fx.service.Delete(ctx, imageKey)

	require.NoError(t, err)
}

func TestImageService_Delete_NotFound(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	imageKey := uuid.NewString()

	fx.imageRepo.EXPECT().
		DeleteByKey(ctx, imageKey).
		Return(repository.ErrImageNotFound)

	err := fx.service.Delete(ctx, imageKey)

	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
}

// The image row is authoritative; a blob that refuses to delete is logged
// and swallowed.
func TestImageService_Delete_StorageFailureIgnored(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	imageKey := uuid.NewString()

	fx.imageRepo.EXPECT().
		DeleteByKey(ctx, imageKey).
		Return(nil)

	fx.storage.EXPECT().
		Delete(ctx, imageKey).
		Return(errors.New("bucket unreachable"))

	err := fx.service.Delete(ctx, imageKey)

	require.NoError(t, err)
}
