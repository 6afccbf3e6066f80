package repository

import (
	"context"

	"github.com/google/uuid"

	"voyago/internal/domain/entity"
	"voyago/internal/errors"
)

// ErrPackageNotFound indicates the requested package does not exist.
var ErrPackageNotFound = errors.New("package not found")

// PackageRepository defines persistence operations for bookable packages.
type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Package, error)
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
}
