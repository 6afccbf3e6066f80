package handler

import (
	"io"
	"log/slog"
	"net/http"

	"voyago/internal/delivery/http/response"
	"voyago/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// stripeSignatureHeader carries the provider's payload signature.
const stripeSignatureHeader = "Stripe-Signature"

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	WebhookUC usecase.WebhookUsecase
	Logger    *slog.Logger
}

// WebhookHandler receives asynchronous payment events from the provider.
type WebhookHandler struct {
	webhookUC usecase.WebhookUsecase
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler.
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: params.WebhookUC,
		logger:    params.Logger,
	}
}

// HandleStripeWebhook verifies and processes a provider event. The raw body
// must be read unmodified because the signature covers the exact bytes sent.
func (h *WebhookHandler) HandleStripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_PAYLOAD", "Failed to read webhook payload")
	}

	signature := c.Request().Header.Get(stripeSignatureHeader)

	if err := h.webhookUC.HandleProviderEvent(c.Request().Context(), payload, signature); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
