package impl

import (
	"context"
	"log/slog"
	"time"

	"voyago/config"
	deliverycontext "voyago/internal/delivery/context"
	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/repository"
	"voyago/internal/domain/service"
	"voyago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultCurrency     = "usd"
	createIntentTimeout = 15 * time.Second
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	packageRepo repository.PackageRepository
	gateway     service.PaymentGateway
	currency    string
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	PackageRepo repository.PackageRepository
	Gateway     service.PaymentGateway
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	currency := defaultCurrency
	if params.Config != nil && params.Config.Stripe != nil && params.Config.Stripe.Currency != "" {
		currency = params.Config.Stripe.Currency
	}

	return &paymentService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		packageRepo: params.PackageRepo,
		gateway:     params.Gateway,
		currency:    currency,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateIntent starts a payment attempt for a package. The charge amount is
// computed server-side from the package's discounted price; client-supplied
// amounts are never trusted.
func (srv *paymentService) CreateIntent(ctx context.Context, input *usecase.CreateIntentInput) (*usecase.CreateIntentOutput, error) {
	srv.log(ctx).Info("Creating payment intent",
		slog.Any("userID", input.UserID),
		slog.Any("packageID", input.PackageID),
	)

	pkg, err := srv.packageRepo.FindByID(ctx, input.PackageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("package not found")
		}

		return nil, errors.Wrap(err, "failed to find package")
	}

	amount := pkg.DiscountedPrice

	gatewayCtx, cancel := context.WithTimeout(ctx, createIntentTimeout)
	defer cancel()

	intent, err := srv.gateway.CreateIntent(gatewayCtx, amount, srv.currency, map[string]string{
		"user_id":    input.UserID.String(),
		"package_id": input.PackageID.String(),
	})
	if err != nil {
		srv.log(ctx).Error("Payment provider rejected intent creation", slog.Any("error", err))

		return nil, domainerrors.ErrPaymentProvider.WrapMessage("failed to create payment intent")
	}

	payment := &entity.Payment{
		UserID:        input.UserID,
		PackageID:     input.PackageID,
		Amount:        amount,
		Currency:      srv.currency,
		Status:        entity.PaymentStatusPending,
		TransactionID: intent.ID,
		PaymentMethod: input.PaymentMethod,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PaymentRepo().Create(ctx, payment)
	})
	if err != nil {
		// The provider intent exists but we failed to record it. Flag loudly:
		// a webhook for this intent will not match any local payment.
		srv.log(ctx).Error("Reconciliation gap: intent created but payment record failed",
			slog.String("transactionID", intent.ID),
			slog.Any("userID", input.UserID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to record pending payment")
	}

	srv.log(ctx).Info("Payment intent created",
		slog.String("transactionID", intent.ID),
		slog.Int64("amount", amount),
	)

	return &usecase.CreateIntentOutput{
		Payment:      payment,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// ConfirmPayment records the client's claim that a payment finished. The
// claim never changes payment state; the provider's webhook is authoritative.
// The current record is returned so clients can poll the reconciled status.
func (srv *paymentService) ConfirmPayment(ctx context.Context, input *usecase.ConfirmPaymentInput) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByTransactionID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by transaction id")
	}

	if payment.UserID != input.UserID {
		return nil, domainerrors.ErrForbidden
	}

	srv.log(ctx).Info("Client reported payment completion",
		slog.String("transactionID", input.TransactionID),
		slog.String("status", payment.Status.String()),
	)

	return payment, nil
}

// GetPayment retrieves a single payment owned by the user.
func (srv *paymentService) GetPayment(ctx context.Context, userID, paymentID uuid.UUID) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	if payment.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return payment, nil
}

// ListUserPayments retrieves the user's payment history.
func (srv *paymentService) ListUserPayments(ctx context.Context, input *usecase.ListPaymentsInput) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.ListByUser(ctx, input.UserID, input.Offset, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user payments")
	}

	return payments, nil
}

// ListAllPayments retrieves all payments for administrative review.
func (srv *paymentService) ListAllPayments(ctx context.Context, offset, limit int) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}
