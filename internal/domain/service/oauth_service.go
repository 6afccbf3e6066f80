package service

import "context"

// GoogleUserInfo is the verified identity extracted from a Google ID token.
type GoogleUserInfo struct {
	GoogleID      string
	Email         string
	Name          string
	EmailVerified bool
}

// OAuthService verifies third-party identity tokens.
type OAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error)
}
