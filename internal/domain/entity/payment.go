package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the lifecycle state of a payment attempt.
// Transitions are monotonic: pending may move to completed or failed,
// and terminal states never change again.
type PaymentStatus string

const (
	// PaymentStatusPending indicates the provider intent exists but no
	// terminal outcome has been reported yet.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusCompleted indicates the provider confirmed the charge.
	PaymentStatusCompleted PaymentStatus = "completed"
	// PaymentStatusFailed indicates the provider reported a failure.
	PaymentStatusFailed PaymentStatus = "failed"
)

// String returns the string representation of the status.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status can never change again.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// Payment represents one attempt to pay for one package by one user.
// TransactionID is the provider's payment intent identifier and acts as
// the idempotency key joining webhook events to this record.
type Payment struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PackageID     uuid.UUID
	Amount        int64 // Smallest currency unit (e.g. cents / fils).
	Currency      string
	Status        PaymentStatus
	TransactionID string // Provider payment intent id, unique.
	PaymentMethod string // Descriptor such as "card", informational only.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
