// Package validator adapts go-playground/validator for echo.
package validator

import (
	domainerrors "voyago/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator library so echo can call it on bound
// request structs.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a CustomValidator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
