package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sejour/internal/domain/entity"
	domainerrors "sejour/internal/domain/errors"
	"sejour/internal/domain/repository"
	mockRepo "sejour/internal/mocks/repository"
	"sejour/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookingServiceFixtures holds all test dependencies for booking service tests.
type bookingServiceFixtures struct {
	service     usecase.BookingUsecase
	bookingRepo *mockRepo.MockBookingRepository
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewBookingService(bookingRepo, logger)

	return bookingServiceFixtures{
		service:     service,
		bookingRepo: bookingRepo,
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	guestID := uuid.New()
	propertyID := uuid.New()
	input := &usecase.CreateBookingInput{
		StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	}

	fx.bookingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Booking")).
		Run(func(ctx context.Context, booking *entity.Booking) {
			booking.ID = uuid.New()
		}).
		Return(nil)

	booking, err := fx.service.Create(ctx, guestID, propertyID, input)

	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.Equal(t, guestID, booking.GuestID)
	assert.Equal(t, propertyID, booking.PropertyID)
	assert.Equal(t, input.StartDate, booking.StartDate)
	assert.Equal(t, input.EndDate, booking.EndDate)
}

// The ledger records what it is told. Overlapping stays on the same property
// are accepted without complaint.
func TestBookingService_Create_NoOverlapCheck(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	guestID := uuid.New()
	propertyID := uuid.New()
	input := &usecase.CreateBookingInput{
		StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	}

	fx.bookingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Booking")).
		Run(func(ctx context.Context, booking *entity.Booking) {
			booking.ID = uuid.New()
		}).
		Return(nil).
		Times(2)

	first, err := fx.service.Create(ctx, guestID, propertyID, input)
	require.NoError(t, err)

	second, err := fx.service.Create(ctx, guestID, propertyID, input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestBookingService_Create_PropertyMissing(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	input := &usecase.CreateBookingInput{
		StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	}

	fx.bookingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Booking")).
		Return(repository.ErrPropertyNotFound)

	booking, err := fx.service.Create(ctx, uuid.New(), uuid.New(), input)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestBookingService_Create_RepositoryError(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	input := &usecase.CreateBookingInput{
		StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	}

	fx.bookingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Booking")).
		Return(errors.New("db error"))

	booking, err := fx.service.Create(ctx, uuid.New(), uuid.New(), input)

	assert.Nil(t, booking)
	assert.Contains(t, err.Error(), "failed to create booking")
}
