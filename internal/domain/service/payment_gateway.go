package service

import "context"

// PaymentIntent is the provider-side handle for a payment attempt. ID doubles
// as the idempotency key for webhook reconciliation.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// ProviderEvent is a verified webhook event from the payment provider.
type ProviderEvent struct {
	Type          string
	TransactionID string
}

// Provider event types the reconciler acts on.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// PaymentGateway creates payment intents with the external provider.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*PaymentIntent, error)
}

// WebhookVerifier authenticates raw webhook payloads against the provider's
// signature scheme and decodes them into provider events.
type WebhookVerifier interface {
	VerifyEvent(payload []byte, signature string) (*ProviderEvent, error)
}
