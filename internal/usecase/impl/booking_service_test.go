package impl

import (
	"context"
	"testing"
	"time"

	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/repository"
	"voyago/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceFixtures struct {
	service     usecase.BookingUsecase
	bookingRepo *MockBookingRepository
	packageRepo *MockPackageRepository
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	t.Helper()

	bookingRepo := &MockBookingRepository{}
	packageRepo := &MockPackageRepository{}

	svc := NewBookingService(BookingServiceParams{
		TxManager:   &fakeTxManager{factory: &fakeRepoFactory{bookingRepo: bookingRepo}},
		BookingRepo: bookingRepo,
		PackageRepo: packageRepo,
		Logger:      newDiscardLogger(),
	})

	return bookingServiceFixtures{
		service:     svc,
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
	}
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	userID := uuid.New()
	packageID := uuid.New()
	bookingDate := time.Now().Add(48 * time.Hour)

	fx.packageRepo.On("FindByID", ctx, packageID).
		Return(&entity.Package{ID: packageID, Title: "City Tour"}, nil)
	fx.bookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)

	booking, err := fx.service.CreateBooking(ctx, &usecase.CreateBookingInput{
		UserID:      userID,
		PackageID:   packageID,
		BookingDate: bookingDate,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, booking.UserID)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
}

func TestBookingService_CreateBooking_UnknownPackage(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	packageID := uuid.New()

	fx.packageRepo.On("FindByID", ctx, packageID).
		Return(nil, repository.ErrPackageNotFound)

	_, err := fx.service.CreateBooking(ctx, &usecase.CreateBookingInput{
		UserID:    uuid.New(),
		PackageID: packageID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	fx.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_GetBooking_WrongOwner(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	bookingID := uuid.New()

	fx.bookingRepo.On("FindByID", ctx, bookingID).
		Return(&entity.Booking{ID: bookingID, UserID: uuid.New()}, nil)

	_, err := fx.service.GetBooking(ctx, uuid.New(), bookingID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBookingService_DeleteBooking_OwnerOnly(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	userID := uuid.New()
	bookingID := uuid.New()

	fx.bookingRepo.On("FindByID", ctx, bookingID).
		Return(&entity.Booking{ID: bookingID, UserID: userID}, nil)
	fx.bookingRepo.On("Delete", ctx, bookingID).Return(nil)

	require.NoError(t, fx.service.DeleteBooking(ctx, userID, bookingID))

	err := fx.service.DeleteBooking(ctx, uuid.New(), bookingID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBookingService_UpdateBookingStatus_InvalidStatus(t *testing.T) {
	fx := createTestBookingService(t)

	_, err := fx.service.UpdateBookingStatus(context.Background(), &usecase.UpdateBookingStatusInput{
		BookingID: uuid.New(),
		Status:    entity.BookingStatus("shipped"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_UpdateBookingStatus_Success(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	bookingID := uuid.New()

	fx.bookingRepo.On("UpdateStatus", ctx, bookingID, entity.BookingStatusConfirmed).Return(nil)
	fx.bookingRepo.On("FindByID", ctx, bookingID).
		Return(&entity.Booking{ID: bookingID, Status: entity.BookingStatusConfirmed}, nil)

	booking, err := fx.service.UpdateBookingStatus(ctx, &usecase.UpdateBookingStatusInput{
		BookingID: bookingID,
		Status:    entity.BookingStatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
}
