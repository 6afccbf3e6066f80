package repository

import (
	"context"

	"voyago/internal/domain/entity"
)

// NotificationRepository defines persistence operations for broadcast notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	List(ctx context.Context, offset, limit int) ([]*entity.Notification, error)
}
