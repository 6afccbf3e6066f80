package impl

import (
	"context"
	"log/slog"

	deliverycontext "voyago/internal/delivery/context"
	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/repository"
	"voyago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	contentRepo repository.ContentRepository
	logger      *slog.Logger
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	ContentRepo repository.ContentRepository
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		contentRepo: params.ContentRepo,
		logger:      params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFAQ adds a new FAQ entry.
func (srv *contentService) CreateFAQ(ctx context.Context, input *usecase.CreateFAQInput) (*entity.FAQ, error) {
	faq := &entity.FAQ{
		Question: input.Question,
		Answer:   input.Answer,
	}

	if err := srv.contentRepo.CreateFAQ(ctx, faq); err != nil {
		return nil, errors.Wrap(err, "failed to create faq")
	}

	srv.log(ctx).Info("FAQ created", slog.Any("faqID", faq.ID))

	return faq, nil
}

// ListFAQs retrieves all FAQ entries.
func (srv *contentService) ListFAQs(ctx context.Context) ([]*entity.FAQ, error) {
	faqs, err := srv.contentRepo.ListFAQs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list faqs")
	}

	return faqs, nil
}

// UpdateFAQ modifies an FAQ entry.
func (srv *contentService) UpdateFAQ(ctx context.Context, input *usecase.UpdateFAQInput) (*entity.FAQ, error) {
	faq := &entity.FAQ{
		ID:       input.ID,
		Question: input.Question,
		Answer:   input.Answer,
	}

	if err := srv.contentRepo.UpdateFAQ(ctx, faq); err != nil {
		if errors.Is(err, repository.ErrFAQNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("faq not found")
		}

		return nil, errors.Wrap(err, "failed to update faq")
	}

	return faq, nil
}

// DeleteFAQ removes an FAQ entry.
func (srv *contentService) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	if err := srv.contentRepo.DeleteFAQ(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFAQNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("faq not found")
		}

		return errors.Wrap(err, "failed to delete faq")
	}

	return nil
}

// GetPrivacyPolicy retrieves the current privacy policy.
func (srv *contentService) GetPrivacyPolicy(ctx context.Context) (*entity.PrivacyPolicy, error) {
	policy, err := srv.contentRepo.GetPrivacyPolicy(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrPrivacyPolicyNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("privacy policy not found")
		}

		return nil, errors.Wrap(err, "failed to get privacy policy")
	}

	return policy, nil
}

// UpdatePrivacyPolicy replaces the privacy policy content. The document is a
// singleton; the first update creates it.
func (srv *contentService) UpdatePrivacyPolicy(ctx context.Context, content string) (*entity.PrivacyPolicy, error) {
	policy, err := srv.contentRepo.GetPrivacyPolicy(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrPrivacyPolicyNotFound) {
			return nil, errors.Wrap(err, "failed to load privacy policy")
		}

		policy = &entity.PrivacyPolicy{ID: uuid.New()}
	}

	policy.Content = content

	if err := srv.contentRepo.UpsertPrivacyPolicy(ctx, policy); err != nil {
		return nil, errors.Wrap(err, "failed to upsert privacy policy")
	}

	srv.log(ctx).Info("Privacy policy updated", slog.Any("policyID", policy.ID))

	return policy, nil
}
