package usecase

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain/entity"
)

// --- Input DTOs ---

// UpdateProfileInput defines the data a user may change on their own account.
type UpdateProfileInput struct {
	UserID   uuid.UUID
	Name     string
	Phone    string
	FCMToken string
}

// UserUsecase defines the interface for user profile and administration operations.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*entity.User, error)
	DeactivateUser(ctx context.Context, userID uuid.UUID) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
