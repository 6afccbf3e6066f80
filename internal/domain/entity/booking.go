package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	// BookingStatusPending indicates a booking awaiting confirmation.
	BookingStatusPending BookingStatus = "pending"
	// BookingStatusConfirmed indicates a confirmed booking.
	BookingStatusConfirmed BookingStatus = "confirmed"
	// BookingStatusCancelled indicates a cancelled booking.
	BookingStatusCancelled BookingStatus = "cancelled"
)

// String returns the string representation of the status.
func (s BookingStatus) String() string {
	return string(s)
}

// IsValid checks if the BookingStatus is a valid value.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// Booking ties a user to a package on a specific date.
type Booking struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PackageID   uuid.UUID
	BookingDate time.Time
	Status      BookingStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
