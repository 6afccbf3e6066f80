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
)

// packageRepository implements the domain's PackageRepository interface using GORM.
type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository is the constructor for packageRepository.
func NewPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &packageRepository{db: db}
}

// Create persists a new package.
func (repo *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	pkgM := fromPackageDomain(pkg)

	if err := repo.db.WithContext(ctx).Create(pkgM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create package")
	}

	pkg.ID = pkgM.ID
	pkg.CreatedAt = pkgM.CreatedAt
	pkg.UpdatedAt = pkgM.UpdatedAt

	return nil
}

// FindByID retrieves a single package by its unique ID.
func (repo *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	var pkgM model.PackageModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pkgM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by id")
	}

	return toPackageDomain(&pkgM), nil
}

// List retrieves packages ordered by creation time, newest first.
func (repo *packageRepository) List(ctx context.Context, offset, limit int) ([]*entity.Package, error) {
	var models []*model.PackageModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	packages := make([]*entity.Package, 0, len(models))
	for _, m := range models {
		packages = append(packages, toPackageDomain(m))
	}

	return packages, nil
}

// Update modifies an existing package.
func (repo *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	pkgM := fromPackageDomain(pkg)

	result := repo.db.WithContext(ctx).
		Model(&model.PackageModel{}).
		Where("id = ?", pkg.ID).
		Updates(map[string]any{
			"title":            pkgM.Title,
			"description":      pkgM.Description,
			"price":            pkgM.Price,
			"discount_percent": pkgM.DiscountPercent,
			"discounted_price": pkgM.DiscountedPrice,
			"features":         pkgM.Features,
			"image_urls":       pkgM.ImageURLs,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update package")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPackageNotFound
	}

	return nil
}

// Delete removes a package by ID.
func (repo *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PackageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete package")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPackageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPackageDomain converts a GORM PackageModel to a domain Package entity.
func toPackageDomain(data *model.PackageModel) *entity.Package {
	if data == nil {
		return nil
	}

	return &entity.Package{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		Price:           data.Price,
		DiscountPercent: data.DiscountPercent,
		DiscountedPrice: data.DiscountedPrice,
		Features:        []string(data.Features),
		ImageURLs:       []string(data.ImageURLs),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromPackageDomain converts a domain Package entity to a GORM PackageModel.
func fromPackageDomain(data *entity.Package) *model.PackageModel {
	if data == nil {
		return nil
	}

	return &model.PackageModel{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		Price:           data.Price,
		DiscountPercent: data.DiscountPercent,
		DiscountedPrice: data.DiscountedPrice,
		Features:        data.Features,
		ImageURLs:       data.ImageURLs,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
