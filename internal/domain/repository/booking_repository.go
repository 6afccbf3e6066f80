package repository

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain/entity"
	"voyago/internal/errors"
)

// ErrBookingNotFound indicates the requested booking does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Booking, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
