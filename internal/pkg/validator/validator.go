// Package validator wraps go-playground/validator with a package level
// instance and a uniform error shape: every failure is ErrValidation joined
// with one message per offending field.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidation is the first error of every validation failure chain.
var ErrValidation = errors.New("validation error")

var validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(url, "required,url").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}

// RegisterStringRule adds a custom tag applied to string fields. It must be
// called during program initialization, before any validation runs.
func RegisterStringRule(tag string, fn func(string) bool) error {
	return validator.RegisterValidation(tag, func(fl gvalidator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
}

// Invalid returns a validation failure that did not come from struct tags,
// for checks that need runtime context.
func Invalid(field string, value any, rule string) error {
	return errors.Join(ErrValidation, fmt.Errorf(errStringFormat, field, value, rule))
}
