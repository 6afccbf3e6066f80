package usecase

import (
	"context"

	"voyago/internal/domain/entity"
)

// --- Input DTOs ---

// BroadcastInput defines the data required to broadcast a push notification.
type BroadcastInput struct {
	Title string
	Body  string
}

// --- Output DTOs ---

// BroadcastOutput summarizes the broadcast delivery.
type BroadcastOutput struct {
	Notification *entity.Notification
	SuccessCount int
	FailureCount int
}

// NotificationUsecase defines the interface for broadcast notification operations.
type NotificationUsecase interface {
	Broadcast(ctx context.Context, input *BroadcastInput) (*BroadcastOutput, error)
	ListNotifications(ctx context.Context, offset, limit int) ([]*entity.Notification, error)
}
