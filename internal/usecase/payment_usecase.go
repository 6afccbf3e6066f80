package usecase

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain/entity"
)

// --- Input DTOs ---

// CreateIntentInput defines the data required to start a payment attempt.
// The amount is never taken from the client; it is derived from the package.
type CreateIntentInput struct {
	UserID        uuid.UUID
	PackageID     uuid.UUID
	PaymentMethod string
}

// ConfirmPaymentInput carries the client's claim that a payment finished.
// The claim is informational only; webhooks remain authoritative.
type ConfirmPaymentInput struct {
	UserID        uuid.UUID
	TransactionID string
}

// ListPaymentsInput defines pagination for payment listings.
type ListPaymentsInput struct {
	UserID uuid.UUID
	Offset int
	Limit  int
}

// --- Output DTOs ---

// CreateIntentOutput returns the pending payment and the provider's client
// secret for finishing the payment on the client side.
type CreateIntentOutput struct {
	Payment      *entity.Payment
	ClientSecret string
}

// PaymentUsecase defines the interface for payment orchestration operations.
type PaymentUsecase interface {
	CreateIntent(ctx context.Context, input *CreateIntentInput) (*CreateIntentOutput, error)
	ConfirmPayment(ctx context.Context, input *ConfirmPaymentInput) (*entity.Payment, error)
	GetPayment(ctx context.Context, userID, paymentID uuid.UUID) (*entity.Payment, error)
	ListUserPayments(ctx context.Context, input *ListPaymentsInput) ([]*entity.Payment, error)
	ListAllPayments(ctx context.Context, offset, limit int) ([]*entity.Payment, error)
}
