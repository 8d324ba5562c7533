// Package validation performs structural checks on analyzer inputs before any
// scoring runs. Failures wrap shared ErrValidation so callers can match them
// with errors.Is.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	sharedErrors "github.com/khanhnv2901/crowdrisk/internal/shared/errors"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Struct validates v against its `validate` struct tags.
func Struct(v any) error {
	if v == nil {
		return fmt.Errorf("%w: input cannot be nil", sharedErrors.ErrValidation)
	}
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", sharedErrors.ErrValidation, err)
	}

	// Report the first failing field only
	for _, e := range validationErrs {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%w: %s: %w", sharedErrors.ErrValidation, field, sharedErrors.ErrMissingRequired)
		case "gt":
			return fmt.Errorf("%w: %s: must be greater than %s", sharedErrors.ErrValidation, field, param)
		case "gte", "min":
			return fmt.Errorf("%w: %s: must be at least %s", sharedErrors.ErrValidation, field, param)
		case "lte", "max":
			return fmt.Errorf("%w: %s: must not exceed %s", sharedErrors.ErrValidation, field, param)
		case "oneof":
			return fmt.Errorf("%w: %s: %q is not one of [%s]", sharedErrors.ErrValidation, field, e.Value(), param)
		default:
			return fmt.Errorf("%w: %s: validation failed (%s)", sharedErrors.ErrValidation, field, e.Tag())
		}
	}

	return fmt.Errorf("%w: %v", sharedErrors.ErrValidation, err)
}
