package postgres

import (
	"context"

	"voyago/internal/domain/entity"
	domainerrors "voyago/internal/domain/errors"
	"voyago/internal/domain/repository"
	"voyago/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contentRepository implements the domain's ContentRepository interface using GORM.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

// CreateFAQ persists a new FAQ entry.
func (repo *contentRepository) CreateFAQ(ctx context.Context, faq *entity.FAQ) error {
	faqM := fromFAQDomain(faq)

	if err := repo.db.WithContext(ctx).Create(faqM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create faq")
	}

	faq.ID = faqM.ID
	faq.CreatedAt = faqM.CreatedAt
	faq.UpdatedAt = faqM.UpdatedAt

	return nil
}

// ListFAQs retrieves all FAQ entries ordered by creation time, oldest first.
func (repo *contentRepository) ListFAQs(ctx context.Context) ([]*entity.FAQ, error) {
	var models []*model.FAQModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list faqs")
	}

	faqs := make([]*entity.FAQ, 0, len(models))
	for _, m := range models {
		faqs = append(faqs, toFAQDomain(m))
	}

	return faqs, nil
}

// UpdateFAQ modifies an existing FAQ entry.
func (repo *contentRepository) UpdateFAQ(ctx context.Context, faq *entity.FAQ) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FAQModel{}).
		Where("id = ?", faq.ID).
		Updates(map[string]any{
			"question": faq.Question,
			"answer":   faq.Answer,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update faq")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFAQNotFound
	}

	return nil
}

// DeleteFAQ removes an FAQ entry by ID.
func (repo *contentRepository) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FAQModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete faq")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFAQNotFound
	}

	return nil
}

// GetPrivacyPolicy retrieves the current privacy policy document.
func (repo *contentRepository) GetPrivacyPolicy(ctx context.Context) (*entity.PrivacyPolicy, error) {
	var policyM model.PrivacyPolicyModel
	err := repo.db.WithContext(ctx).
		Order("updated_at DESC").
		First(&policyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrivacyPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to get privacy policy")
	}

	return &entity.PrivacyPolicy{
		ID:        policyM.ID,
		Content:   policyM.Content,
		UpdatedAt: policyM.UpdatedAt,
	}, nil
}

// UpsertPrivacyPolicy creates or replaces the privacy policy document.
func (repo *contentRepository) UpsertPrivacyPolicy(ctx context.Context, policy *entity.PrivacyPolicy) error {
	policyM := &model.PrivacyPolicyModel{
		ID:      policy.ID,
		Content: policy.Content,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(policyM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert privacy policy")
	}

	policy.ID = policyM.ID
	policy.UpdatedAt = policyM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toFAQDomain(data *model.FAQModel) *entity.FAQ {
	if data == nil {
		return nil
	}

	return &entity.FAQ{
		ID:        data.ID,
		Question:  data.Question,
		Answer:    data.Answer,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromFAQDomain(data *entity.FAQ) *model.FAQModel {
	if data == nil {
		return nil
	}

	return &model.FAQModel{
		ID:        data.ID,
		Question:  data.Question,
		Answer:    data.Answer,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
