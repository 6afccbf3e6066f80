package impl

import (
	"context"
	"log/slog"

	deliverycontext "voyago/internal/delivery/context"
	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/repository"
	"voyago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager   repository.TransactionManager
	bookingRepo repository.BookingRepository
	packageRepo repository.PackageRepository
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BookingRepo repository.BookingRepository
	PackageRepo repository.PackageRepository
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:   params.TxManager,
		bookingRepo: params.BookingRepo,
		packageRepo: params.PackageRepo,
		logger:      params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBooking books a package for a user.
func (srv *bookingService) CreateBooking(ctx context.Context, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	if _, err := srv.packageRepo.FindByID(ctx, input.PackageID); err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("package not found")
		}

		return nil, errors.Wrap(err, "failed to find package")
	}

	booking := &entity.Booking{
		UserID:      input.UserID,
		PackageID:   input.PackageID,
		BookingDate: input.BookingDate,
		Status:      entity.BookingStatusPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.BookingRepo().Create(ctx, booking)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create booking", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute booking transaction")
	}

	srv.log(ctx).Info("Booking created", slog.Any("bookingID", booking.ID), slog.Any("userID", input.UserID))

	return booking, nil
}

// GetBooking retrieves a single booking owned by the user.
func (srv *bookingService) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("booking not found")
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	if booking.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return booking, nil
}

// ListUserBookings retrieves the user's bookings.
func (srv *bookingService) ListUserBookings(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user bookings")
	}

	return bookings, nil
}

// ListAllBookings retrieves all bookings for administrative review.
func (srv *bookingService) ListAllBookings(ctx context.Context, offset, limit int) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// DeleteBooking removes a booking owned by the user.
func (srv *bookingService) DeleteBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("booking not found")
		}

		return errors.Wrap(err, "failed to find booking")
	}

	if booking.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := srv.bookingRepo.Delete(ctx, bookingID); err != nil {
		return errors.Wrap(err, "failed to delete booking")
	}

	srv.log(ctx).Info("Booking deleted", slog.Any("bookingID", bookingID), slog.Any("userID", userID))

	return nil
}

// UpdateBookingStatus changes a booking's status.
func (srv *bookingService) UpdateBookingStatus(ctx context.Context, input *usecase.UpdateBookingStatusInput) (*entity.Booking, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid booking status")
	}

	if err := srv.bookingRepo.UpdateStatus(ctx, input.BookingID, input.Status); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("booking not found")
		}

		return nil, errors.Wrap(err, "failed to update booking status")
	}

	booking, err := srv.bookingRepo.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload booking")
	}

	srv.log(ctx).Info("Booking status updated",
		slog.Any("bookingID", input.BookingID),
		slog.String("status", input.Status.String()),
	)

	return booking, nil
}
