package impl

import (
	"context"
	"testing"

	"voyago/config"
	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/repository"
	"voyago/internal/domain/service"
	"voyago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	paymentRepo *MockPaymentRepository
	packageRepo *MockPackageRepository
	gateway     *MockPaymentGateway
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	t.Helper()

	paymentRepo := &MockPaymentRepository{}
	packageRepo := &MockPackageRepository{}
	gateway := &MockPaymentGateway{}

	cfg := &config.Config{
		Stripe: &config.StripeConfig{Currency: "usd"},
	}

	svc := NewPaymentService(PaymentServiceParams{
		TxManager:   &fakeTxManager{factory: &fakeRepoFactory{paymentRepo: paymentRepo}},
		PaymentRepo: paymentRepo,
		PackageRepo: packageRepo,
		Gateway:     gateway,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:     svc,
		paymentRepo: paymentRepo,
		packageRepo: packageRepo,
		gateway:     gateway,
	}
}

func TestPaymentService_CreateIntent_Success(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()
	packageID := uuid.New()

	pkg := &entity.Package{
		ID:              packageID,
		Title:           "City Tour",
		Price:           10000,
		DiscountPercent: 10,
		DiscountedPrice: 9000,
	}

	fx.packageRepo.On("FindByID", mock.Anything, packageID).Return(pkg, nil)
	fx.gateway.On("CreateIntent", mock.Anything, int64(9000), "usd", map[string]string{
		"user_id":    userID.String(),
		"package_id": packageID.String(),
	}).Return(&service.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil)
	fx.paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)

	output, err := fx.service.CreateIntent(ctx, &usecase.CreateIntentInput{
		UserID:        userID,
		PackageID:     packageID,
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	// The charge amount comes from the package, never from the client.
	assert.Equal(t, int64(9000), output.Payment.Amount)
	assert.Equal(t, "usd", output.Payment.Currency)
	assert.Equal(t, entity.PaymentStatusPending, output.Payment.Status)
	assert.Equal(t, "pi_123", output.Payment.TransactionID)
	assert.Equal(t, "pi_123_secret", output.ClientSecret)
}

func TestPaymentService_CreateIntent_PackageNotFound(t *testing.T) {
	fx := createTestPaymentService(t)
	packageID := uuid.New()

	fx.packageRepo.On("FindByID", mock.Anything, packageID).
		Return(nil, repository.ErrPackageNotFound)

	_, err := fx.service.CreateIntent(context.Background(), &usecase.CreateIntentInput{
		UserID:    uuid.New(),
		PackageID: packageID,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
	fx.gateway.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_CreateIntent_ProviderFailure(t *testing.T) {
	fx := createTestPaymentService(t)
	packageID := uuid.New()

	pkg := &entity.Package{ID: packageID, Price: 5000, DiscountedPrice: 5000}

	fx.packageRepo.On("FindByID", mock.Anything, packageID).Return(pkg, nil)
	fx.gateway.On("CreateIntent", mock.Anything, int64(5000), "usd", mock.Anything).
		Return(nil, errors.New("provider unavailable"))

	_, err := fx.service.CreateIntent(context.Background(), &usecase.CreateIntentInput{
		UserID:    uuid.New(),
		PackageID: packageID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentProvider)
	fx.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentService_ConfirmPayment_ReturnsCurrentRecord(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()

	payment := &entity.Payment{
		ID:            uuid.New(),
		UserID:        userID,
		TransactionID: "pi_123",
		Status:        entity.PaymentStatusPending,
	}

	fx.paymentRepo.On("FindByTransactionID", ctx, "pi_123").Return(payment, nil)

	got, err := fx.service.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{
		UserID:        userID,
		TransactionID: "pi_123",
	})
	require.NoError(t, err)

	// The claim is informational; the status stays whatever the webhook made it.
	assert.Equal(t, entity.PaymentStatusPending, got.Status)
}

func TestPaymentService_ConfirmPayment_WrongOwner(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	payment := &entity.Payment{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		TransactionID: "pi_123",
	}

	fx.paymentRepo.On("FindByTransactionID", ctx, "pi_123").Return(payment, nil)

	_, err := fx.service.ConfirmPayment(ctx, &usecase.ConfirmPaymentInput{
		UserID:        uuid.New(),
		TransactionID: "pi_123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentService_GetPayment_WrongOwner(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	paymentID := uuid.New()

	payment := &entity.Payment{ID: paymentID, UserID: uuid.New()}

	fx.paymentRepo.On("FindByID", ctx, paymentID).Return(payment, nil)

	_, err := fx.service.GetPayment(ctx, uuid.New(), paymentID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
