// Package notification delivers push notifications via Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"voyago/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// multicastBatchSize is Firebase's limit per multicast request.
const multicastBatchSize = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase push sender instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendToDevices sends a push notification to the given device tokens,
// chunking requests to respect Firebase's multicast limit. Invalid and
// unregistered tokens are collected so callers can prune them.
func (s *firebaseService) SendToDevices(ctx context.Context, tokens []string, title, body string, data map[string]string) (*service.PushResult, error) {
	result := &service.PushResult{}
	if len(tokens) == 0 {
		return result, nil
	}

	for start := 0; start < len(tokens); start += multicastBatchSize {
		end := min(start+multicastBatchSize, len(tokens))
		batch := tokens[start:end]

		message := &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		response, err := s.client.SendEachForMulticast(ctx, message)
		if err != nil {
			return result, fmt.Errorf("failed to send multicast notification: %w", err)
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error != nil {
				if messaging.IsInvalidArgument(sendResponse.Error) ||
					messaging.IsUnregistered(sendResponse.Error) {
					result.InvalidTokens = append(result.InvalidTokens, batch[idx])
				}
			}
		}
	}

	return result, nil
}
