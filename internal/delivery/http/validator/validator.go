// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound inputs.
package validator

import (
	domainerrors "console/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance.
type Validator struct {
	validate *playground.Validate
}

// New creates the echo validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks struct tags and maps failures to the shared validation error.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
