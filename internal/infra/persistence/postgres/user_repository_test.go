package postgres

import (
	"testing"
	"time"

	"voyago/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMapper_UnlinkedAccountStoresNullGoogleID(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleUser,
	}

	userM := fromUserDomain(user)
	assert.Nil(t, userM.GoogleID)

	back := toUserDomain(userM)
	assert.Empty(t, back.GoogleID)
}

func TestUserMapper_LinkedAccountRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	user := &entity.User{
		ID:         uuid.New(),
		Email:      "alice@example.com",
		Name:       "Alice",
		GoogleID:   "google-sub",
		Role:       entity.RoleAdmin,
		IsVerified: true,
		IsActive:   true,
		FCMToken:   "fcm-token",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	userM := fromUserDomain(user)
	require.NotNil(t, userM.GoogleID)
	assert.Equal(t, "google-sub", *userM.GoogleID)

	back := toUserDomain(userM)
	assert.Equal(t, user, back)
}
