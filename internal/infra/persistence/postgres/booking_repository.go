package postgres

import (
	"context"

	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/repository"
	"voyago/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements the domain's BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Create persists a new booking.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user or package reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// FindByID retrieves a single booking by its unique ID.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM), nil
}

// ListByUser retrieves a user's bookings ordered by booking date, newest first.
func (repo *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Booking, error) {
	var models []*model.BookingModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by user")
	}

	bookings := make([]*entity.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, toBookingDomain(m))
	}

	return bookings, nil
}

// List retrieves all bookings ordered by booking date, newest first.
func (repo *bookingRepository) List(ctx context.Context, offset, limit int) ([]*entity.Booking, error) {
	var models []*model.BookingModel
	err := repo.db.WithContext(ctx).
		Order("booking_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]*entity.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, toBookingDomain(m))
	}

	return bookings, nil
}

// UpdateStatus changes the status of a booking.
func (repo *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// Delete removes a booking by ID.
func (repo *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete booking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookingDomain converts a GORM BookingModel to a domain Booking entity.
func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:          data.ID,
		UserID:      data.UserID,
		PackageID:   data.PackageID,
		BookingDate: data.BookingDate,
		Status:      entity.BookingStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBookingDomain converts a domain Booking entity to a GORM BookingModel.
func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:          data.ID,
		UserID:      data.UserID,
		PackageID:   data.PackageID,
		BookingDate: data.BookingDate,
		Status:      data.Status.String(),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
