package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"voyago/internal/domain/entity"
)

// --- Input DTOs ---

// CreateBookingInput defines the data required to book a package.
type CreateBookingInput struct {
	UserID      uuid.UUID
	PackageID   uuid.UUID
	BookingDate time.Time
}

// UpdateBookingStatusInput defines the data required to change a booking's status.
type UpdateBookingStatusInput struct {
	BookingID uuid.UUID
	Status    entity.BookingStatus
}

// BookingUsecase defines the interface for booking operations.
type BookingUsecase interface {
	CreateBooking(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Booking, error)
	ListAllBookings(ctx context.Context, offset, limit int) ([]*entity.Booking, error)
	UpdateBookingStatus(ctx context.Context, input *UpdateBookingStatusInput) (*entity.Booking, error)
	DeleteBooking(ctx context.Context, userID, bookingID uuid.UUID) error
}
