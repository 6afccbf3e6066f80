package usecase

import "context"

// WebhookUsecase reconciles provider webhook events with local payment state.
type WebhookUsecase interface {
	// HandleProviderEvent verifies the raw payload's signature and applies the
	// event to the matching payment. It is safe to call multiple times for the
	// same event.
	HandleProviderEvent(ctx context.Context, payload []byte, signature string) error
}
