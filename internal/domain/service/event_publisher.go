package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PaymentEvent is the message published on payment lifecycle transitions.
type PaymentEvent struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	UserID        uuid.UUID `json:"user_id"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher publishes domain events for downstream consumers.
type EventPublisher interface {
	PublishPaymentEvent(ctx context.Context, event *PaymentEvent) error
	Close() error
}
