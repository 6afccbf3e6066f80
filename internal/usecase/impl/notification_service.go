package impl

import (
	"context"
	"log/slog"

	deliverycontext "voyago/internal/delivery/context"
	"voyago/internal/domain/entity"
	"voyago/internal/domain/repository"
	"voyago/internal/domain/service"
	"voyago/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	pushSender       service.PushSender
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	PushSender       service.PushSender `optional:"true"`
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		pushSender:       params.PushSender,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Broadcast persists the notification and fans it out to every registered
// device. The record is written first so a delivery failure never loses the
// notification itself.
func (srv *notificationService) Broadcast(ctx context.Context, input *usecase.BroadcastInput) (*usecase.BroadcastOutput, error) {
	notification := &entity.Notification{
		Title: input.Title,
		Body:  input.Body,
	}

	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	output := &usecase.BroadcastOutput{Notification: notification}

	if srv.pushSender == nil {
		srv.log(ctx).Warn("Push sender not configured, notification stored only")

		return output, nil
	}

	tokens, err := srv.userRepo.ListFCMTokens(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list device tokens for broadcast", slog.Any("error", err))

		return output, nil
	}

	result, err := srv.pushSender.SendToDevices(ctx, tokens, input.Title, input.Body, map[string]string{
		"notification_id": notification.ID.String(),
	})
	if err != nil {
		srv.log(ctx).Error("Broadcast push delivery failed", slog.Any("error", err))

		return output, nil
	}

	output.SuccessCount = result.SuccessCount
	output.FailureCount = result.FailureCount

	// Drop tokens the provider rejected so dead devices leave the pool.
	if len(result.InvalidTokens) > 0 {
		if err := srv.userRepo.ClearFCMTokens(ctx, result.InvalidTokens); err != nil {
			srv.log(ctx).Warn("Failed to prune invalid device tokens", slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Broadcast delivered",
		slog.Any("notificationID", notification.ID),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
		slog.Int("invalidTokens", len(result.InvalidTokens)),
	)

	return output, nil
}

// ListNotifications retrieves past broadcasts, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, offset, limit int) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}
