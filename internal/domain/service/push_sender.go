package service

import "context"

// PushResult summarizes a multicast push delivery.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// PushSender delivers push notifications to device tokens.
type PushSender interface {
	SendToDevices(ctx context.Context, tokens []string, title, body string, data map[string]string) (*PushResult, error)
}
