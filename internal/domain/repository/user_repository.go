package repository

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain/entity"
	"voyago/internal/errors"
)

// User repository sentinel errors.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailDuplicate = errors.New("email already exists")
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)
	ListFCMTokens(ctx context.Context) ([]string, error)
	ClearFCMTokens(ctx context.Context, tokens []string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
