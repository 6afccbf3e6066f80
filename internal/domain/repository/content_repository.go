package repository

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain/entity"
	"voyago/internal/errors"
)

// Content repository sentinel errors.
var (
	ErrFAQNotFound           = errors.New("faq not found")
	ErrPrivacyPolicyNotFound = errors.New("privacy policy not found")
)

// ContentRepository defines persistence operations for informational content
// such as FAQ entries and the privacy policy document.
type ContentRepository interface {
	CreateFAQ(ctx context.Context, faq *entity.FAQ) error
	ListFAQs(ctx context.Context) ([]*entity.FAQ, error)
	UpdateFAQ(ctx context.Context, faq *entity.FAQ) error
	DeleteFAQ(ctx context.Context, id uuid.UUID) error

	GetPrivacyPolicy(ctx context.Context) (*entity.PrivacyPolicy, error)
	UpsertPrivacyPolicy(ctx context.Context, policy *entity.PrivacyPolicy) error
}
