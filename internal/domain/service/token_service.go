package service

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain/entity"
)

// TokenClaims carries the authenticated identity extracted from a session token.
type TokenClaims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService issues and validates signed session tokens. Revoke invalidates
// a token before its natural expiry; Validate must reject revoked tokens.
type TokenService interface {
	Issue(ctx context.Context, userID uuid.UUID, role entity.Role) (string, error)
	Validate(ctx context.Context, token string) (*TokenClaims, error)
	Revoke(ctx context.Context, token string) error
}
