package repository

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain/entity"
	"voyago/internal/errors"
)

// Payment repository sentinel errors.
var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrTransactionIDConflict = errors.New("transaction id already exists")
)

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Payment, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Payment, error)

	// UpdateStatusFromPending atomically moves the payment identified by
	// transactionID from pending to the given terminal status. It reports
	// whether a row was actually transitioned; false with a nil error means
	// the payment was already terminal and the call is an idempotent no-op.
	UpdateStatusFromPending(ctx context.Context, transactionID string, status entity.PaymentStatus) (bool, error)
}
