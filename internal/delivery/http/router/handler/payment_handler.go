package handler

import (
	"log/slog"
	"net/http"

	"voyago/internal/delivery/http/response"
	"voyago/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CreateIntentRequest represents the request body for starting a payment.
// The amount is never accepted from the client.
type CreateIntentRequest struct {
	PackageID     uuid.UUID `json:"package_id" validate:"required"`
	PaymentMethod string    `json:"payment_method"`
}

// ConfirmPaymentRequest represents the client's claim that a payment finished.
type ConfirmPaymentRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
}

// CreateIntentResponse returns the pending payment together with the
// provider's client secret.
type CreateIntentResponse struct {
	Payment      *PaymentResponse `json:"payment"`
	ClientSecret string           `json:"client_secret"`
}

// CreateIntent handles starting a payment attempt for a package.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.paymentUC.CreateIntent(c.Request().Context(), &usecase.CreateIntentInput{
		UserID:        userID,
		PackageID:     req.PackageID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &CreateIntentResponse{
		Payment:      newPaymentResponse(output.Payment),
		ClientSecret: output.ClientSecret,
	}, "Payment intent created successfully")
}

// ConfirmPayment records the client's claim that a payment finished.
// Webhooks remain the source of truth for the final status.
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.paymentUC.ConfirmPayment(c.Request().Context(), &usecase.ConfirmPaymentInput{
		UserID:        userID,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPaymentResponse(payment), "Payment confirmation recorded")
}

// GetPayment handles retrieving one of the current user's payments.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	paymentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), userID, paymentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPaymentResponse(payment), "Payment retrieved successfully")
}

// ListMyPayments handles listing the current user's payments.
func (h *PaymentHandler) ListMyPayments(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	offset, limit := pagination(c)

	payments, err := h.paymentUC.ListUserPayments(c.Request().Context(), &usecase.ListPaymentsInput{
		UserID: userID,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPaymentResponses(payments), "Payments retrieved successfully")
}

// ListAllPayments handles the administrative payment listing.
func (h *PaymentHandler) ListAllPayments(c echo.Context) error {
	offset, limit := pagination(c)

	payments, err := h.paymentUC.ListAllPayments(c.Request().Context(), offset, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPaymentResponses(payments), "Payments retrieved successfully")
}
