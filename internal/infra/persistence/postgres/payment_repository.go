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

// paymentRepository implements the domain's PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new payment record.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTransactionIDConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user or package reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindByID retrieves a single payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindByTransactionID retrieves a single payment by its provider transaction ID.
func (repo *paymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&paymentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by transaction id")
	}

	return toPaymentDomain(&paymentM), nil
}

// ListByUser retrieves a user's payments ordered by creation time, newest first.
func (repo *paymentRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Payment, error) {
	var models []*model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by user")
	}

	payments := make([]*entity.Payment, 0, len(models))
	for _, m := range models {
		payments = append(payments, toPaymentDomain(m))
	}

	return payments, nil
}

// List retrieves all payments ordered by creation time, newest first.
func (repo *paymentRepository) List(ctx context.Context, offset, limit int) ([]*entity.Payment, error) {
	var models []*model.PaymentModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(models))
	for _, m := range models {
		payments = append(payments, toPaymentDomain(m))
	}

	return payments, nil
}

// UpdateStatusFromPending atomically transitions a pending payment to a
// terminal status. The WHERE clause on the current status makes concurrent
// webhook deliveries race-safe: only one update can win, the rest observe
// zero affected rows.
func (repo *paymentRepository) UpdateStatusFromPending(ctx context.Context, transactionID string, status entity.PaymentStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("transaction_id = ? AND status = ?", transactionID, entity.PaymentStatusPending.String()).
		Update("status", status.String())
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update payment status")
	}

	if result.RowsAffected == 0 {
		// Distinguish an idempotent replay from a payment we never recorded.
		var count int64
		err := repo.db.WithContext(ctx).
			Model(&model.PaymentModel{}).
			Where("transaction_id = ?", transactionID).
			Count(&count).Error
		if err != nil {
			return false, errors.Wrap(err, "failed to check payment existence")
		}
		if count == 0 {
			return false, repository.ErrPaymentNotFound
		}

		return false, nil
	}

	return true, nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:            data.ID,
		UserID:        data.UserID,
		PackageID:     data.PackageID,
		Amount:        data.Amount,
		Currency:      data.Currency,
		Status:        entity.PaymentStatus(data.Status),
		TransactionID: data.TransactionID,
		PaymentMethod: data.PaymentMethod,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:            data.ID,
		UserID:        data.UserID,
		PackageID:     data.PackageID,
		Amount:        data.Amount,
		Currency:      data.Currency,
		Status:        data.Status.String(),
		TransactionID: data.TransactionID,
		PaymentMethod: data.PaymentMethod,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
