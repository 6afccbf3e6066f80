package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"voyago/config"
	"voyago/internal/delivery"
	"voyago/internal/delivery/http"
	"voyago/internal/delivery/http/middleware"
	"voyago/internal/delivery/http/router/handler"
	"voyago/internal/domain/service"
	"voyago/internal/infra/auth"
	"voyago/internal/infra/auth/google"
	logs "voyago/internal/infra/log"
	"voyago/internal/infra/mail"
	"voyago/internal/infra/notification"
	"voyago/internal/infra/payment"
	"voyago/internal/infra/persistence/postgres"
	"voyago/internal/infra/pubsub"
	"voyago/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPackageRepository,
			postgres.NewBookingRepository,
			postgres.NewPaymentRepository,
			postgres.NewNotificationRepository,
			postgres.NewContentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			newRevocationStore,
			auth.NewJWTService,
			newOTPGenerator,
			mail.NewSMTPMailer,
			google.NewAuthService,
			payment.NewStripeGateway,
			payment.NewStripeWebhookVerifier,
			newFirebaseService,
			pubsub.NewEventPublisher,
		),
	)
}

func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

func newRevocationStore(lc fx.Lifecycle) auth.RevocationStore {
	store := auth.NewMemoryRevocationStore(time.Minute)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.Close()

			return nil
		},
	})

	return store
}

func newOTPGenerator(cfg *config.Config) (service.OTPGenerator, error) {
	if cfg.Auth == nil {
		return nil, fmt.Errorf("auth configuration is required")
	}

	return auth.NewOTPGenerator(cfg.Auth.OTPHashKey)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewPackageService,
			impl.NewBookingService,
			impl.NewPaymentService,
			impl.NewWebhookService,
			impl.NewNotificationService,
			impl.NewContentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewPackageHandler,
			handler.NewBookingHandler,
			handler.NewPaymentHandler,
			handler.NewWebhookHandler,
			handler.NewNotificationHandler,
			handler.NewContentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
