// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"voyago/config"
	deliverycontext "voyago/internal/delivery/context"
	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/repository"
	"voyago/internal/domain/service"
	"voyago/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultOTPTTL = 10 * time.Minute

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	otpGenerator service.OTPGenerator
	mailer       service.Mailer
	oauthService service.OAuthService
	otpTTL       time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OTPGenerator service.OTPGenerator
	Mailer       service.Mailer
	OAuthService service.OAuthService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	otpTTL := defaultOTPTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OTPTTL > 0 {
		otpTTL = params.Config.Auth.OTPTTL
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		otpGenerator: params.OTPGenerator,
		mailer:       params.Mailer,
		oauthService: params.OAuthService,
		otpTTL:       otpTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the account registration process. Registering an
// unverified address again re-issues the verification challenge instead of
// failing, so users who lost the first email are never locked out.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	var registeredUser *entity.User
	var otpCode string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		if existing != nil {
			if existing.IsVerified {
				srv.log(ctx).Warn("Registration rejected, email already verified", slog.String("email", email))

				return domainerrors.ErrEmailInUse
			}

			// Unverified account: refresh the challenge and credentials.
			return srv.refreshUnverifiedAccount(ctx, userRepo, existing, input, &registeredUser, &otpCode)
		}

		return srv.createNewAccount(ctx, userRepo, email, input, &registeredUser, &otpCode)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	if err := srv.sendVerificationEmail(ctx, registeredUser.Email, otpCode); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrMailDelivery.WrapMessage("failed to send verification email")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

func (srv *authService) createNewAccount(
	ctx context.Context,
	userRepo repository.UserRepository,
	email string,
	input *usecase.RegisterInput,
	registeredUser **entity.User,
	otpCode *string,
) error {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password during registration")
	}

	code, codeHash, err := srv.otpGenerator.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	expiresAt := time.Now().Add(srv.otpTTL)
	newUser := &entity.User{
		Email:        email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
		IsVerified:   false,
		IsActive:     true,
		OTPHash:      codeHash,
		OTPExpiresAt: &expiresAt,
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return domainerrors.ErrEmailInUse
		}

		return errors.Wrap(err, "failed to create user during registration")
	}

	*registeredUser = newUser
	*otpCode = code

	return nil
}

func (srv *authService) refreshUnverifiedAccount(
	ctx context.Context,
	userRepo repository.UserRepository,
	user *entity.User,
	input *usecase.RegisterInput,
	registeredUser **entity.User,
	otpCode *string,
) error {
	srv.log(ctx).Info("Re-issuing verification challenge for unverified account", slog.Any("userID", user.ID))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password during re-registration")
	}

	code, codeHash, err := srv.otpGenerator.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	expiresAt := time.Now().Add(srv.otpTTL)
	user.Name = input.Name
	user.Phone = input.Phone
	user.PasswordHash = hashedPassword
	user.OTPHash = codeHash
	user.OTPExpiresAt = &expiresAt

	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update unverified user during registration")
	}

	*registeredUser = user
	*otpCode = code

	return nil
}

// VerifyEmail consumes a verification challenge. The challenge is single-use:
// it is cleared in the same transaction that marks the account verified.
func (srv *authService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Verifying email challenge", slog.String("email", email))

	var verifiedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Do not reveal whether the address is registered.
				return domainerrors.ErrInvalidOrExpiredOTP
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		if !user.HasLiveChallenge(time.Now()) {
			return domainerrors.ErrInvalidOrExpiredOTP
		}

		if !srv.otpGenerator.Verify(user.OTPHash, input.Code) {
			return domainerrors.ErrInvalidOrExpiredOTP
		}

		user.ClearChallenge()
		user.IsVerified = true

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark user verified")
		}

		verifiedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Email verification failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute email verification transaction")
	}

	token, err := srv.tokenService.Issue(ctx, verifiedUser.ID, verifiedUser.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Email verified successfully", slog.Any("userID", verifiedUser.ID))

	return &usecase.AuthOutput{Token: token, User: verifiedUser}, nil
}

// ResendOTP re-issues the verification challenge for an unverified account.
func (srv *authService) ResendOTP(ctx context.Context, input *usecase.ResendOTPInput) error {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Re-sending verification code", slog.String("email", email))

	var otpCode string
	var recipient string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		if user.IsVerified {
			return domainerrors.ErrConflict.WrapMessage("email is already verified")
		}

		code, codeHash, err := srv.otpGenerator.Generate()
		if err != nil {
			return errors.Wrap(err, "failed to generate verification code")
		}

		expiresAt := time.Now().Add(srv.otpTTL)
		user.OTPHash = codeHash
		user.OTPExpiresAt = &expiresAt

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to store verification challenge")
		}

		otpCode = code
		recipient = user.Email

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to re-issue verification code", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute resend transaction")
	}

	if err := srv.sendVerificationEmail(ctx, recipient, otpCode); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.String("email", email), slog.Any("error", err))

		return domainerrors.ErrMailDelivery.WrapMessage("failed to send verification email")
	}

	return nil
}

// Login orchestrates the login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Accounts created via Google sign-in carry no password credential.
	if !user.HasCredential() || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		srv.log(ctx).Warn("Login rejected, email not verified", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrEmailNotVerified
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login rejected, account disabled", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrAccountDisabled
	}

	// Rotate the device token so pushes follow the latest login.
	if input.FCMToken != "" && input.FCMToken != user.FCMToken {
		user.FCMToken = input.FCMToken
		if err := srv.userRepo.Update(ctx, user); err != nil {
			srv.log(ctx).Warn("Failed to rotate device token", slog.Any("userID", user.ID), slog.Any("error", err))
		}
	}

	token, err := srv.tokenService.Issue(ctx, user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Logout invalidates the presented session token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if err := srv.tokenService.Revoke(ctx, input.Token); err != nil {
		srv.log(ctx).Error("Failed to revoke session token", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke session token")
	}

	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GoogleSignIn handles login or registration via Google Sign-In.
func (srv *authService) GoogleSignIn(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Handling Google sign-in")

	googleUser, err := srv.oauthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify Google ID token")
	}

	var loggedInUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findOrCreateGoogleUser(ctx, userRepo, googleUser)
		if err != nil {
			return err
		}

		if !user.IsActive {
			return domainerrors.ErrAccountDisabled
		}

		if input.FCMToken != "" && input.FCMToken != user.FCMToken {
			user.FCMToken = input.FCMToken
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to rotate device token")
			}
		}

		loggedInUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Google sign-in failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute Google sign-in transaction")
	}

	token, err := srv.tokenService.Issue(ctx, loggedInUser.ID, loggedInUser.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.AuthOutput{Token: token, User: loggedInUser}, nil
}

// findOrCreateGoogleUser finds an existing account for the Google identity,
// links it by email when possible, or creates a fresh verified account.
func (srv *authService) findOrCreateGoogleUser(ctx context.Context, userRepo repository.UserRepository, googleUser *service.GoogleUserInfo) (*entity.User, error) {
	user, err := userRepo.FindByGoogleID(ctx, googleUser.GoogleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by google id")
	}

	email := normalizeEmail(googleUser.Email)

	// Link the Google identity to an existing email account if one exists.
	user, err = userRepo.FindByEmail(ctx, email)
	if err == nil {
		user.GoogleID = googleUser.GoogleID
		// Google already verified the address.
		user.IsVerified = true
		user.ClearChallenge()

		if err := userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to link google account")
		}

		srv.log(ctx).Info("Linked Google identity to existing account", slog.Any("userID", user.ID))

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	newUser := &entity.User{
		Email:      email,
		Name:       googleUser.Name,
		GoogleID:   googleUser.GoogleID,
		Role:       entity.RoleUser,
		IsVerified: true,
		IsActive:   true,
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for google sign-in")
	}

	srv.log(ctx).Info("Created new account from Google sign-in", slog.Any("userID", newUser.ID))

	return newUser, nil
}

func (srv *authService) sendVerificationEmail(ctx context.Context, to, code string) error {
	subject := "Your verification code"
	body := fmt.Sprintf(
		"Your verification code is %s.\n\nIt expires in %d minutes. If you did not request this, you can ignore this email.\n",
		code, int(srv.otpTTL.Minutes()),
	)

	return srv.mailer.Send(ctx, to, subject, body)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
