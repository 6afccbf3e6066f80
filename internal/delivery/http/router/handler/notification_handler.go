package handler

import (
	"log/slog"
	"net/http"

	"voyago/internal/delivery/http/response"
	"voyago/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for broadcast notification handlers.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// BroadcastRequest represents the request body for a broadcast notification.
type BroadcastRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// BroadcastResponse summarizes the broadcast delivery.
type BroadcastResponse struct {
	Notification *NotificationResponse `json:"notification"`
	SuccessCount int                   `json:"success_count"`
	FailureCount int                   `json:"failure_count"`
}

// Broadcast handles sending a push notification to all registered devices.
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.notificationUC.Broadcast(c.Request().Context(), &usecase.BroadcastInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &BroadcastResponse{
		Notification: newNotificationResponse(output.Notification),
		SuccessCount: output.SuccessCount,
		FailureCount: output.FailureCount,
	}, "Broadcast sent successfully")
}

// ListNotifications handles listing past broadcasts.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	offset, limit := pagination(c)

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), offset, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNotificationResponses(notifications), "Notifications retrieved successfully")
}
