// Package validator wraps go-playground/validator with standardized error
// formatting, so callers can test for validation failures with a single
// sentinel instead of inspecting library-specific types.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the root of every error chain returned when one or
// more struct fields violate their validation tags.
var ErrValidationFailed = errors.New("struct validation failed")

var validate *gvalidator.Validate

const errStringFormat = "'%s': value '%v' does not satisfy the '%s' rule"

func init() {
	validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError flattens library validation errors into a joined chain rooted
// at ErrValidationFailed. Non-validation errors pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, fieldErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat, fieldErr.Field(), fieldErr.Value(), fieldErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks the struct against its `validate` tags. It returns nil on
// success, or an error chain containing ErrValidationFailed plus one entry
// per offending field.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
