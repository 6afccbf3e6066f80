package impl

import (
	"context"
	"testing"

	"voyago/internal/domain/entity"
	"voyago/internal/domain/service"
	"voyago/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Broadcast_FansOutToDevices(t *testing.T) {
	notificationRepo := &MockNotificationRepository{}
	userRepo := &MockUserRepository{}
	pushSender := &MockPushSender{}
	ctx := context.Background()

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		PushSender:       pushSender,
		Logger:           newDiscardLogger(),
	})

	notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	userRepo.On("ListFCMTokens", ctx).Return([]string{"token-1", "token-2"}, nil)
	pushSender.On("SendToDevices", ctx, []string{"token-1", "token-2"}, "Sale", "20% off this week", mock.Anything).
		Return(&service.PushResult{SuccessCount: 2}, nil)

	output, err := svc.Broadcast(ctx, &usecase.BroadcastInput{Title: "Sale", Body: "20% off this week"})
	require.NoError(t, err)
	assert.Equal(t, 2, output.SuccessCount)
	assert.Equal(t, 0, output.FailureCount)
}

func TestNotificationService_Broadcast_PrunesInvalidTokens(t *testing.T) {
	notificationRepo := &MockNotificationRepository{}
	userRepo := &MockUserRepository{}
	pushSender := &MockPushSender{}
	ctx := context.Background()

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		PushSender:       pushSender,
		Logger:           newDiscardLogger(),
	})

	notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	userRepo.On("ListFCMTokens", ctx).Return([]string{"token-1", "token-dead"}, nil)
	pushSender.On("SendToDevices", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&service.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-dead"}}, nil)
	userRepo.On("ClearFCMTokens", ctx, []string{"token-dead"}).Return(nil)

	_, err := svc.Broadcast(ctx, &usecase.BroadcastInput{Title: "Sale", Body: "20% off"})
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestNotificationService_Broadcast_WithoutPushSenderStoresOnly(t *testing.T) {
	notificationRepo := &MockNotificationRepository{}
	userRepo := &MockUserRepository{}
	ctx := context.Background()

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		Logger:           newDiscardLogger(),
	})

	notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)

	output, err := svc.Broadcast(ctx, &usecase.BroadcastInput{Title: "Sale", Body: "20% off"})
	require.NoError(t, err)
	assert.Zero(t, output.SuccessCount)
	userRepo.AssertNotCalled(t, "ListFCMTokens", mock.Anything)
}

func TestNotificationService_Broadcast_DeliveryFailureKeepsRecord(t *testing.T) {
	notificationRepo := &MockNotificationRepository{}
	userRepo := &MockUserRepository{}
	pushSender := &MockPushSender{}
	ctx := context.Background()

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		PushSender:       pushSender,
		Logger:           newDiscardLogger(),
	})

	notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	userRepo.On("ListFCMTokens", ctx).Return([]string{"token-1"}, nil)
	pushSender.On("SendToDevices", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("fcm unavailable"))

	// The record is written first, so the broadcast itself still succeeds.
	output, err := svc.Broadcast(ctx, &usecase.BroadcastInput{Title: "Sale", Body: "20% off"})
	require.NoError(t, err)
	require.NotNil(t, output.Notification)
	assert.Zero(t, output.SuccessCount)
}

func TestNotificationService_ListNotifications(t *testing.T) {
	notificationRepo := &MockNotificationRepository{}
	ctx := context.Background()

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		UserRepo:         &MockUserRepository{},
		Logger:           newDiscardLogger(),
	})

	notificationRepo.On("List", ctx, 0, 20).
		Return([]*entity.Notification{{Title: "Sale"}}, nil)

	notifications, err := svc.ListNotifications(ctx, 0, 20)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}
