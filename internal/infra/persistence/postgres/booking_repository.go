package postgres

import (
	"context"

	"sejour/internal/domain/entity"
	domainerrors "sejour/internal/domain/errors"
	"sejour/internal/domain/repository"
	"sejour/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// bookingRepository implements the domain.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Create persists a new booking row. No overlap check is performed against
// existing bookings for the same property and date range.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPropertyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	// Update the entity with generated values
	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// fromBookingDomain converts a domain Booking entity to a GORM BookingModel.
func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:         data.ID,
		StartDate:  data.StartDate,
		EndDate:    data.EndDate,
		PropertyID: data.PropertyID,
		GuestID:    data.GuestID,
		CreatedAt:  data.CreatedAt,
	}
}
