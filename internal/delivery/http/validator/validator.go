// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	validatorpkg "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// requestValidator wraps a shared validator instance.
type requestValidator struct {
	validate *validatorpkg.Validate
}

// New creates the echo request validator.
func New() *requestValidator {
	return &requestValidator{
		validate: validatorpkg.New(validatorpkg.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
