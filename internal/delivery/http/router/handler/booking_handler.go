package handler

import (
	"log/slog"
	"net/http"
	"time"

	"voyago/internal/delivery/http/response"
	"voyago/internal/domain/entity"
	"voyago/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler holds dependencies for booking handlers.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler.
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CreateBookingRequest represents the request body for booking a package.
type CreateBookingRequest struct {
	PackageID   uuid.UUID `json:"package_id" validate:"required"`
	BookingDate time.Time `json:"booking_date" validate:"required"`
}

// UpdateBookingStatusRequest represents the request body for changing a booking's status.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

// CreateBooking handles booking a package for the current user.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), &usecase.CreateBookingInput{
		UserID:      userID,
		PackageID:   req.PackageID,
		BookingDate: req.BookingDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newBookingResponse(booking), "Booking created successfully")
}

// GetBooking handles retrieving one of the current user's bookings.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	bookingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookingResponse(booking), "Booking retrieved successfully")
}

// ListMyBookings handles listing the current user's bookings.
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	offset, limit := pagination(c)

	bookings, err := h.bookingUC.ListUserBookings(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookingResponses(bookings), "Bookings retrieved successfully")
}

// DeleteBooking handles removing one of the current user's bookings.
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	bookingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.bookingUC.DeleteBooking(c.Request().Context(), userID, bookingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Booking deleted"}, "Booking deleted successfully")
}

// ListAllBookings handles the administrative booking listing.
func (h *BookingHandler) ListAllBookings(c echo.Context) error {
	offset, limit := pagination(c)

	bookings, err := h.bookingUC.ListAllBookings(c.Request().Context(), offset, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookingResponses(bookings), "Bookings retrieved successfully")
}

// UpdateBookingStatus handles the administrative booking status change.
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	bookingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	booking, err := h.bookingUC.UpdateBookingStatus(c.Request().Context(), &usecase.UpdateBookingStatusInput{
		BookingID: bookingID,
		Status:    entity.BookingStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookingResponse(booking), "Booking status updated successfully")
}
