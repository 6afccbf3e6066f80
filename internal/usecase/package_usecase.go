package usecase

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain/entity"
)

// --- Input DTOs ---

// CreatePackageInput defines the data required to create a bookable package.
// Price is in the currency's minor unit.
type CreatePackageInput struct {
	Title           string
	Description     string
	Price           int64
	DiscountPercent int
	Features        []string
	ImageURLs       []string
}

// UpdatePackageInput defines the data required to update a package.
type UpdatePackageInput struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Price           int64
	DiscountPercent int
	Features        []string
	ImageURLs       []string
}

// PackageUsecase defines the interface for package catalog operations.
type PackageUsecase interface {
	CreatePackage(ctx context.Context, input *CreatePackageInput) (*entity.Package, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	ListPackages(ctx context.Context, offset, limit int) ([]*entity.Package, error)
	UpdatePackage(ctx context.Context, input *UpdatePackageInput) (*entity.Package, error)
	DeletePackage(ctx context.Context, id uuid.UUID) error
}
