package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "voyago/internal/delivery/context"
	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/repository"
	"voyago/internal/domain/service"
	"voyago/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// webhookService implements the WebhookUsecase interface.
type webhookService struct {
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	verifier    service.WebhookVerifier
	publisher   service.EventPublisher
	pushSender  service.PushSender
	logger      *slog.Logger
}

// WebhookServiceParams holds dependencies for WebhookService, injected by Fx.
type WebhookServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	UserRepo    repository.UserRepository
	Verifier    service.WebhookVerifier
	Publisher   service.EventPublisher
	PushSender  service.PushSender `optional:"true"`
	Logger      *slog.Logger
}

// NewWebhookService is the constructor for webhookService.
func NewWebhookService(params WebhookServiceParams) usecase.WebhookUsecase {
	return &webhookService{
		paymentRepo: params.PaymentRepo,
		userRepo:    params.UserRepo,
		verifier:    params.Verifier,
		publisher:   params.Publisher,
		pushSender:  params.PushSender,
		logger:      params.Logger,
	}
}

func (srv *webhookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleProviderEvent verifies and applies one provider webhook event.
// Deliveries are at-least-once and may arrive concurrently; the status
// transition is a single conditional update, so replays and races collapse
// into no-ops.
func (srv *webhookService) HandleProviderEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := srv.verifier.VerifyEvent(payload, signature)
	if err != nil {
		srv.log(ctx).Warn("Webhook signature verification failed", slog.Any("error", err))

		return domainerrors.ErrInvalidSignature
	}

	switch event.Type {
	case service.EventPaymentSucceeded:
		return srv.applyTransition(ctx, event.TransactionID, entity.PaymentStatusCompleted)
	case service.EventPaymentFailed:
		return srv.applyTransition(ctx, event.TransactionID, entity.PaymentStatusFailed)
	default:
		// Event types we do not act on are acknowledged so the provider
		// stops redelivering them.
		srv.log(ctx).Debug("Ignoring unhandled webhook event type", slog.String("type", event.Type))

		return nil
	}
}

func (srv *webhookService) applyTransition(ctx context.Context, transactionID string, status entity.PaymentStatus) error {
	transitioned, err := srv.paymentRepo.UpdateStatusFromPending(ctx, transactionID, status)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			// An event for a payment we never recorded. Acknowledge anyway:
			// redelivery cannot repair a missing record, only operators can.
			srv.log(ctx).Error("Webhook event references unknown payment",
				slog.String("transactionID", transactionID),
				slog.String("status", status.String()),
			)

			return nil
		}

		// A local storage failure must not turn into a redelivery storm.
		// Acknowledge and log the gap for operators; the conditional
		// transition makes a later manual replay of the event safe.
		srv.log(ctx).Error("Failed to apply payment transition",
			slog.String("transactionID", transactionID),
			slog.String("status", status.String()),
			slog.Any("error", err),
		)

		return nil
	}

	if !transitioned {
		// Replay of an already reconciled event.
		srv.log(ctx).Info("Payment already in terminal state, ignoring replay",
			slog.String("transactionID", transactionID),
		)

		return nil
	}

	srv.log(ctx).Info("Payment reconciled",
		slog.String("transactionID", transactionID),
		slog.String("status", status.String()),
	)

	payment, err := srv.paymentRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load payment after transition", slog.Any("error", err))

		return nil
	}

	srv.publishEvent(ctx, payment)

	if status == entity.PaymentStatusCompleted {
		srv.notifyUser(ctx, payment)
	}

	return nil
}

// publishEvent emits the lifecycle event. Publishing is best-effort; the
// reconciliation already committed.
func (srv *webhookService) publishEvent(ctx context.Context, payment *entity.Payment) {
	event := &service.PaymentEvent{
		PaymentID:     payment.ID,
		UserID:        payment.UserID,
		TransactionID: payment.TransactionID,
		Status:        payment.Status.String(),
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		OccurredAt:    time.Now().UTC(),
	}

	if err := srv.publisher.PublishPaymentEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish payment event",
			slog.String("transactionID", payment.TransactionID),
			slog.Any("error", err),
		)
	}
}

// notifyUser pushes a confirmation to the payer's device, best-effort.
func (srv *webhookService) notifyUser(ctx context.Context, payment *entity.Payment) {
	if srv.pushSender == nil {
		return
	}

	user, err := srv.userRepo.FindByID(ctx, payment.UserID)
	if err != nil || user.FCMToken == "" {
		return
	}

	_, err = srv.pushSender.SendToDevices(ctx, []string{user.FCMToken},
		"Payment confirmed",
		"Your payment was received. Thank you!",
		map[string]string{"payment_id": payment.ID.String()},
	)
	if err != nil {
		srv.log(ctx).Warn("Failed to push payment confirmation",
			slog.Any("userID", payment.UserID),
			slog.Any("error", err),
		)
	}
}
