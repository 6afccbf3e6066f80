package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"voyago/config"
	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/repository"
	"voyago/internal/domain/service"
	"voyago/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *MockUserRepository
	hasher       *MockPasswordHasher
	tokenService *MockTokenService
	otpGenerator *MockOTPGenerator
	mailer       *MockMailer
	oauthService *MockOAuthService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := &MockUserRepository{}
	hasher := &MockPasswordHasher{}
	tokenService := &MockTokenService{}
	otpGenerator := &MockOTPGenerator{}
	mailer := &MockMailer{}
	oauthService := &MockOAuthService{}

	cfg := &config.Config{
		Auth: &config.AuthConfig{OTPTTL: 10 * time.Minute},
	}

	svc := NewAuthService(AuthServiceParams{
		TxManager:    &fakeTxManager{factory: &fakeRepoFactory{userRepo: userRepo}},
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		OTPGenerator: otpGenerator,
		Mailer:       mailer,
		OAuthService: oauthService,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		otpGenerator: otpGenerator,
		mailer:       mailer,
		oauthService: oauthService,
	}
}

func TestAuthService_Register_NewAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "password123").Return("hashed-pw", nil)
	fx.otpGenerator.On("Generate").Return("123456", "otp-hash", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "hashed-pw", user.PasswordHash)
			assert.Equal(t, "otp-hash", user.OTPHash)
			assert.Equal(t, entity.RoleUser, user.Role)
			assert.False(t, user.IsVerified)
			assert.True(t, user.IsActive)
			require.NotNil(t, user.OTPExpiresAt)
		}).
		Return(nil)
	// The plaintext code travels by email only.
	fx.mailer.On("Send", ctx, "alice@example.com", mock.Anything, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "123456")
	})).Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", output.User.Email)
	fx.mailer.AssertExpectations(t)
}

func TestAuthService_Register_VerifiedEmailRejected(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(&entity.User{Email: "alice@example.com", IsVerified: true}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
	fx.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Register_UnverifiedAccountReissuesChallenge(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	existing := &entity.User{
		ID:         uuid.New(),
		Email:      "alice@example.com",
		IsVerified: false,
		IsActive:   true,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(existing, nil)
	fx.hasher.On("Hash", "new-password").Return("new-hash", nil)
	fx.otpGenerator.On("Generate").Return("654321", "new-otp-hash", nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "new-hash", user.PasswordHash)
			assert.Equal(t, "new-otp-hash", user.OTPHash)
			assert.False(t, user.IsVerified)
		}).
		Return(nil)
	fx.mailer.On("Send", ctx, "alice@example.com", mock.Anything, mock.Anything).Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "new-password",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, output.User.ID)
}

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(5 * time.Minute)

	user := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		Role:         entity.RoleUser,
		OTPHash:      "otp-hash",
		OTPExpiresAt: &expiresAt,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.otpGenerator.On("Verify", "otp-hash", "123456").Return(true)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.User)
			assert.True(t, updated.IsVerified)
			// Single-use: the challenge is cleared in the same transaction.
			assert.Empty(t, updated.OTPHash)
			assert.Nil(t, updated.OTPExpiresAt)
		}).
		Return(nil)
	fx.tokenService.On("Issue", ctx, userID, entity.RoleUser).Return("session-token", nil)

	output, err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{
		Email: "alice@example.com",
		Code:  "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.True(t, output.User.IsVerified)
}

func TestAuthService_VerifyEmail_WrongCode(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(5 * time.Minute)

	user := &entity.User{
		Email:        "alice@example.com",
		OTPHash:      "otp-hash",
		OTPExpiresAt: &expiresAt,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.otpGenerator.On("Verify", "otp-hash", "000000").Return(false)

	_, err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{
		Email: "alice@example.com",
		Code:  "000000",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredOTP)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAuthService_VerifyEmail_ExpiredChallenge(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(-time.Minute)

	user := &entity.User{
		Email:        "alice@example.com",
		OTPHash:      "otp-hash",
		OTPExpiresAt: &expiresAt,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)

	_, err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{
		Email: "alice@example.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredOTP)
	fx.otpGenerator.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAuthService_VerifyEmail_UnknownEmailIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{
		Email: "ghost@example.com",
		Code:  "123456",
	})

	// Same error as a bad code so addresses cannot be enumerated.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredOTP)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: "hashed-pw",
		Role:         entity.RoleUser,
		IsVerified:   true,
		IsActive:     true,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.hasher.On("Check", "password123", "hashed-pw").Return(true)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenService.On("Issue", ctx, userID, entity.RoleUser).Return("session-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "password123",
		FCMToken: "device-token",
	})
	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, "device-token", output.User.FCMToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		Email:        "alice@example.com",
		PasswordHash: "hashed-pw",
		IsVerified:   true,
		IsActive:     true,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed-pw").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	// Same error as a bad password so addresses cannot be enumerated.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_OAuthOnlyAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		Email:      "alice@example.com",
		GoogleID:   "google-sub",
		IsVerified: true,
		IsActive:   true,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.hasher.On("Check", "password123", "").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnverifiedEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		Email:        "alice@example.com",
		PasswordHash: "hashed-pw",
		IsVerified:   false,
		IsActive:     true,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.hasher.On("Check", "password123", "hashed-pw").Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		Email:        "alice@example.com",
		PasswordHash: "hashed-pw",
		IsVerified:   true,
		IsActive:     false,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.hasher.On("Check", "password123", "hashed-pw").Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("Revoke", ctx, "session-token").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{Token: "session-token"})
	require.NoError(t, err)
	fx.tokenService.AssertExpectations(t)
}

func TestAuthService_GoogleSignIn_CreatesVerifiedAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.oauthService.On("VerifyIDToken", ctx, "google-id-token").
		Return(&service.GoogleUserInfo{
			GoogleID:      "google-sub",
			Email:         "Alice@Example.com",
			Name:          "Alice",
			EmailVerified: true,
		}, nil)
	fx.userRepo.On("FindByGoogleID", ctx, "google-sub").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "google-sub", user.GoogleID)
			assert.True(t, user.IsVerified, "Google already verified the address")
			assert.Empty(t, user.PasswordHash)
		}).
		Return(nil)
	fx.tokenService.On("Issue", ctx, mock.Anything, entity.RoleUser).Return("session-token", nil)

	output, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "google-id-token"})
	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
}

func TestAuthService_GoogleSignIn_LinksExistingEmailAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Minute)

	existing := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: "hashed-pw",
		Role:         entity.RoleUser,
		IsVerified:   false,
		IsActive:     true,
		OTPHash:      "otp-hash",
		OTPExpiresAt: &expiresAt,
	}

	fx.oauthService.On("VerifyIDToken", ctx, "google-id-token").
		Return(&service.GoogleUserInfo{GoogleID: "google-sub", Email: "alice@example.com", Name: "Alice"}, nil)
	fx.userRepo.On("FindByGoogleID", ctx, "google-sub").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(existing, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "google-sub", user.GoogleID)
			assert.True(t, user.IsVerified)
			assert.Empty(t, user.OTPHash, "pending challenge is dropped on link")
		}).
		Return(nil)
	fx.tokenService.On("Issue", ctx, userID, entity.RoleUser).Return("session-token", nil)

	output, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "google-id-token"})
	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_GoogleSignIn_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.oauthService.On("VerifyIDToken", ctx, "google-id-token").
		Return(&service.GoogleUserInfo{GoogleID: "google-sub", Email: "alice@example.com"}, nil)
	fx.userRepo.On("FindByGoogleID", ctx, "google-sub").
		Return(&entity.User{ID: uuid.New(), GoogleID: "google-sub", IsActive: false}, nil)

	_, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "google-id-token"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}
