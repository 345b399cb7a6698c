package impl

import (
	"context"
	"log/slog"

	"sejour/internal/domain/entity"
	domainerrors "sejour/internal/domain/errors"
	"sejour/internal/domain/repository"
	"sejour/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookingRepo repository.BookingRepository
	logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(bookingRepo repository.BookingRepository, logger *slog.Logger) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create persists a booking for the guest against the property.
//
// No overlap check runs against existing bookings for the same property and
// dates, and EndDate is accepted as-is relative to StartDate. Both gaps are
// deliberate; see the booking ledger notes in DESIGN.md.
func (srv *bookingService) Create(ctx context.Context, guestID, propertyID uuid.UUID, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	srv.logger.Info("Creating booking", "propertyID", propertyID, "guestID", guestID)

	booking := &entity.Booking{
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		PropertyID: propertyID,
		GuestID:    guestID,
	}

	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to create booking")
	}

	return booking, nil
}
