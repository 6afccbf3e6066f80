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

// packageService implements the PackageUsecase interface.
type packageService struct {
	packageRepo repository.PackageRepository
	logger      *slog.Logger
}

// PackageServiceParams holds dependencies for PackageService, injected by Fx.
type PackageServiceParams struct {
	fx.In

	PackageRepo repository.PackageRepository
	Logger      *slog.Logger
}

// NewPackageService is the constructor for packageService.
func NewPackageService(params PackageServiceParams) usecase.PackageUsecase {
	return &packageService{
		packageRepo: params.PackageRepo,
		logger:      params.Logger,
	}
}

func (srv *packageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePackage creates a bookable package. The discounted price is always
// recomputed from the base price and discount percentage.
func (srv *packageService) CreatePackage(ctx context.Context, input *usecase.CreatePackageInput) (*entity.Package, error) {
	if err := validatePackagePricing(input.Price, input.DiscountPercent); err != nil {
		return nil, err
	}

	pkg := &entity.Package{
		Title:           input.Title,
		Description:     input.Description,
		Price:           input.Price,
		DiscountPercent: input.DiscountPercent,
		Features:        input.Features,
		ImageURLs:       input.ImageURLs,
	}
	pkg.RecalculateDiscountedPrice()

	if err := srv.packageRepo.Create(ctx, pkg); err != nil {
		return nil, errors.Wrap(err, "failed to create package")
	}

	srv.log(ctx).Info("Package created", slog.Any("packageID", pkg.ID), slog.String("title", pkg.Title))

	return pkg, nil
}

// GetPackage retrieves a single package.
func (srv *packageService) GetPackage(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	pkg, err := srv.packageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("package not found")
		}

		return nil, errors.Wrap(err, "failed to find package")
	}

	return pkg, nil
}

// ListPackages retrieves the package catalog.
func (srv *packageService) ListPackages(ctx context.Context, offset, limit int) ([]*entity.Package, error) {
	packages, err := srv.packageRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	return packages, nil
}

// UpdatePackage updates a package and recomputes its discounted price.
func (srv *packageService) UpdatePackage(ctx context.Context, input *usecase.UpdatePackageInput) (*entity.Package, error) {
	if err := validatePackagePricing(input.Price, input.DiscountPercent); err != nil {
		return nil, err
	}

	pkg := &entity.Package{
		ID:              input.ID,
		Title:           input.Title,
		Description:     input.Description,
		Price:           input.Price,
		DiscountPercent: input.DiscountPercent,
		Features:        input.Features,
		ImageURLs:       input.ImageURLs,
	}
	pkg.RecalculateDiscountedPrice()

	if err := srv.packageRepo.Update(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("package not found")
		}

		return nil, errors.Wrap(err, "failed to update package")
	}

	srv.log(ctx).Info("Package updated", slog.Any("packageID", pkg.ID))

	return pkg, nil
}

// DeletePackage removes a package from the catalog.
func (srv *packageService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	if err := srv.packageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("package not found")
		}

		return errors.Wrap(err, "failed to delete package")
	}

	srv.log(ctx).Info("Package deleted", slog.Any("packageID", id))

	return nil
}

func validatePackagePricing(price int64, discountPercent int) error {
	if price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if discountPercent < 0 || discountPercent > 100 {
		return domainerrors.ErrValidationFailed.WrapMessage("discount percent must be between 0 and 100")
	}

	return nil
}
