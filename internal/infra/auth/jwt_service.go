package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"voyago/config"
	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/service"
	"voyago/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret      string
	ttl         time.Duration
	revocations RevocationStore
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config, revocations RevocationStore) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}

	return &jwtService{
		secret:      cfg.JWT.Secret,
		ttl:         ttl,
		revocations: revocations,
	}, nil
}

// Issue creates a signed session token for the given user and role.
func (s *jwtService) Issue(_ context.Context, userID uuid.UUID, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the token's revocation status, signature and expiry, and
// returns the embedded claims. Revocation is checked first so a revoked token
// is rejected regardless of its remaining lifetime.
func (s *jwtService) Validate(_ context.Context, tokenString string) (*service.TokenClaims, error) {
	if s.revocations != nil && s.revocations.IsRevoked(tokenString) {
		return nil, domainerrors.ErrTokenRevoked
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrTokenMalformed
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed
	}

	roleStr, _ := claims["role"].(string)
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return nil, domainerrors.ErrTokenMalformed
	}

	return &service.TokenClaims{
		UserID: userID,
		Role:   role,
	}, nil
}

// Revoke invalidates the token for its remaining lifetime. Malformed or
// already-expired tokens are a no-op since they cannot authenticate anyway.
func (s *jwtService) Revoke(_ context.Context, tokenString string) error {
	if s.revocations == nil {
		return errors.New("revocation store is not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	s.revocations.Revoke(tokenString, time.Until(exp.Time))

	return nil
}
