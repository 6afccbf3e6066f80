package handler

import (
	"log/slog"
	"net/http"

	"voyago/internal/delivery/http/response"
	"voyago/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PackageHandlerParams holds dependencies for PackageHandler, injected by Fx.
type PackageHandlerParams struct {
	fx.In

	PackageUC usecase.PackageUsecase
	Logger    *slog.Logger
}

// PackageHandler holds dependencies for package catalog handlers.
type PackageHandler struct {
	packageUC usecase.PackageUsecase
	logger    *slog.Logger
}

// NewPackageHandler is the constructor for PackageHandler.
func NewPackageHandler(params PackageHandlerParams) *PackageHandler {
	return &PackageHandler{
		packageUC: params.PackageUC,
		logger:    params.Logger,
	}
}

// PackageRequest represents the request body for creating or updating a package.
// Prices are integers in the smallest currency unit.
type PackageRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description"`
	Price           int64    `json:"price" validate:"gte=0"`
	DiscountPercent int      `json:"discount_percent" validate:"gte=0,lte=100"`
	Features        []string `json:"features"`
	ImageURLs       []string `json:"image_urls" validate:"omitempty,dive,url"`
}

// ListPackages handles the public catalog listing.
func (h *PackageHandler) ListPackages(c echo.Context) error {
	offset, limit := pagination(c)

	packages, err := h.packageUC.ListPackages(c.Request().Context(), offset, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPackageResponses(packages), "Packages retrieved successfully")
}

// GetPackage handles retrieving a single package.
func (h *PackageHandler) GetPackage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	pkg, err := h.packageUC.GetPackage(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPackageResponse(pkg), "Package retrieved successfully")
}

// CreatePackage handles creating a catalog package.
func (h *PackageHandler) CreatePackage(c echo.Context) error {
	var req PackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	pkg, err := h.packageUC.CreatePackage(c.Request().Context(), &usecase.CreatePackageInput{
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		Features:        req.Features,
		ImageURLs:       req.ImageURLs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPackageResponse(pkg), "Package created successfully")
}

// UpdatePackage handles updating a catalog package.
func (h *PackageHandler) UpdatePackage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req PackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	pkg, err := h.packageUC.UpdatePackage(c.Request().Context(), &usecase.UpdatePackageInput{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		Features:        req.Features,
		ImageURLs:       req.ImageURLs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPackageResponse(pkg), "Package updated successfully")
}

// DeletePackage handles removing a catalog package.
func (h *PackageHandler) DeletePackage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.packageUC.DeletePackage(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Package deleted"}, "Package deleted successfully")
}
