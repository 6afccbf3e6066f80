package usecase

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain/entity"
)

// --- Input DTOs ---

// CreateFAQInput defines the data required to create an FAQ entry.
type CreateFAQInput struct {
	Question string
	Answer   string
}

// UpdateFAQInput defines the data required to update an FAQ entry.
type UpdateFAQInput struct {
	ID       uuid.UUID
	Question string
	Answer   string
}

// ContentUsecase defines the interface for informational content operations.
type ContentUsecase interface {
	CreateFAQ(ctx context.Context, input *CreateFAQInput) (*entity.FAQ, error)
	ListFAQs(ctx context.Context) ([]*entity.FAQ, error)
	UpdateFAQ(ctx context.Context, input *UpdateFAQInput) (*entity.FAQ, error)
	DeleteFAQ(ctx context.Context, id uuid.UUID) error

	GetPrivacyPolicy(ctx context.Context) (*entity.PrivacyPolicy, error)
	UpdatePrivacyPolicy(ctx context.Context, content string) (*entity.PrivacyPolicy, error)
}
