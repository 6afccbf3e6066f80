package auth

import (
	"context"
	"testing"
	"time"

	"voyago/config"
	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = ttl

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{}, nil)
	require.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	store := NewMemoryRevocationStore(time.Hour)
	defer store.Close()

	svc, err := NewJWTService(newTestJWTConfig(time.Hour), store)
	require.NoError(t, err)

	ctx := context.Background()
	userID := uuid.New()

	token, err := svc.Issue(ctx, userID, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_Validate_Expired(t *testing.T) {
	store := NewMemoryRevocationStore(time.Hour)
	defer store.Close()

	svc, err := NewJWTService(newTestJWTConfig(time.Hour), store)
	require.NoError(t, err)

	// Issue never produces an expired token, so sign one with a past
	// expiry directly using the same secret and claim shape.
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": entity.RoleUser.String(),
		"iat":  now.Add(-2 * time.Hour).Unix(),
		"exp":  now.Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_Validate_Malformed(t *testing.T) {
	store := NewMemoryRevocationStore(time.Hour)
	defer store.Close()

	svc, err := NewJWTService(newTestJWTConfig(time.Hour), store)
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	store := NewMemoryRevocationStore(time.Hour)
	defer store.Close()

	svc, err := NewJWTService(newTestJWTConfig(time.Hour), store)
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.JWT.Secret = "other-secret"
	otherCfg.JWT.TTL = time.Hour
	otherSvc, err := NewJWTService(otherCfg, store)
	require.NoError(t, err)

	ctx := context.Background()
	token, err := otherSvc.Issue(ctx, uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestJWTService_Revoke_RejectsBeforeExpiry(t *testing.T) {
	store := NewMemoryRevocationStore(time.Hour)
	defer store.Close()

	svc, err := NewJWTService(newTestJWTConfig(time.Hour), store)
	require.NoError(t, err)

	ctx := context.Background()
	token, err := svc.Issue(ctx, uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, token))

	// Revocation wins even though the token itself is still within its lifetime.
	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRevoked)
}

func TestJWTService_Revoke_MalformedTokenIsNoop(t *testing.T) {
	store := NewMemoryRevocationStore(time.Hour)
	defer store.Close()

	svc, err := NewJWTService(newTestJWTConfig(time.Hour), store)
	require.NoError(t, err)

	assert.NoError(t, svc.Revoke(context.Background(), "not-a-token"))
	assert.False(t, store.IsRevoked("not-a-token"))
}
