// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate validates a bound request struct against its tags.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
