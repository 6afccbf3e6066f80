// Package google verifies Google ID tokens for social sign-in.
package google

import (
	"context"
	"log/slog"

	"voyago/config"
	"voyago/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// Issuers Google signs ID tokens under.
const (
	issuerHTTPS = "https://accounts.google.com"
	issuerPlain = "accounts.google.com"
)

// validateFunc matches idtoken.Validate; injectable for tests.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// authService implements service.OAuthService for Google sign-in.
type authService struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a Google OAuth service. Tokens are validated
// against Google's published signing keys; no claim is trusted before the
// signature checks out.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	return &authService{
		clientID: cfg.GoogleOAuth.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken implements service.OAuthService interface
func (s *authService) VerifyIDToken(ctx context.Context, idToken string) (*service.GoogleUserInfo, error) {
	// Checks the signature against Google's JWKS, the audience and the expiry.
	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Error("Google ID token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if err := s.vetPayload(payload); err != nil {
		s.logger.Error("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)

	s.logger.Info("Google ID token verified successfully", slog.String("email", email))

	return &service.GoogleUserInfo{
		GoogleID:      payload.Subject,
		Email:         email,
		Name:          name,
		EmailVerified: true,
	}, nil
}

// vetPayload checks the claims the signature check alone does not cover.
func (s *authService) vetPayload(payload *idtoken.Payload) error {
	if payload.Issuer != issuerHTTPS && payload.Issuer != issuerPlain {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return errors.New("missing email claim")
	}

	// Only verified addresses may be linked to local accounts.
	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return errors.New("email not verified")
	}

	return nil
}
