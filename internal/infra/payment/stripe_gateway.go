// Package payment integrates with Stripe for payment intents and webhooks.
package payment

import (
	"context"
	"encoding/json"
	"log/slog"

	"voyago/config"
	"voyago/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// stripeGateway implements service.PaymentGateway using the Stripe API client.
type stripeGateway struct {
	api    *client.API
	logger *slog.Logger
}

// NewStripeGateway is the constructor for stripeGateway.
func NewStripeGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &stripeGateway{
		api:    api,
		logger: logger,
	}, nil
}

// CreateIntent registers a payment intent with Stripe. The amount is in the
// currency's minor unit and must already be computed server-side.
func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	g.logger.Info("Stripe payment intent created",
		slog.String("intent_id", intent.ID),
		slog.Int64("amount", amount),
		slog.String("currency", currency),
	)

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// stripeWebhookVerifier implements service.WebhookVerifier using Stripe's
// signed webhook scheme.
type stripeWebhookVerifier struct {
	secret string
	logger *slog.Logger
}

// NewStripeWebhookVerifier is the constructor for stripeWebhookVerifier.
func NewStripeWebhookVerifier(cfg *config.Config, logger *slog.Logger) (service.WebhookVerifier, error) {
	if cfg.Stripe.WebhookSecret == "" {
		return nil, errors.New("stripe webhook secret must be provided")
	}

	return &stripeWebhookVerifier{
		secret: cfg.Stripe.WebhookSecret,
		logger: logger,
	}, nil
}

// VerifyEvent authenticates the raw payload against the Stripe-Signature
// header and extracts the event type and payment intent ID.
func (v *stripeWebhookVerifier) VerifyEvent(payload []byte, signature string) (*service.ProviderEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, v.secret)
	if err != nil {
		return nil, errors.Wrap(err, "webhook signature verification failed")
	}

	providerEvent := &service.ProviderEvent{
		Type: string(event.Type),
	}

	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded, stripe.EventTypePaymentIntentPaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return nil, errors.Wrap(err, "failed to parse payment intent from event")
		}
		providerEvent.TransactionID = intent.ID
	default:
		// Unknown event types are returned as-is; the reconciler acks them.
	}

	v.logger.Info("Stripe webhook event verified",
		slog.String("type", providerEvent.Type),
		slog.String("transaction_id", providerEvent.TransactionID),
	)

	return providerEvent, nil
}
