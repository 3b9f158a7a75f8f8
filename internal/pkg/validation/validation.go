// Package validation configures go-playground/validator for command inputs and
// translates its field errors into the errs taxonomy.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"orderdesk/internal/pkg/errs"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their json names.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return v
}

// Struct validates s and joins one errs error per failing field:
// *errs.ValueIsRequiredError for "required" and *errs.ValueIsInvalidError otherwise.
func Struct(v *validatorv10.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validatorv10.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("input", err)
	}

	joined := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fieldName(fe)
		if fe.Tag() == "required" {
			joined = append(joined, errs.NewValueIsRequiredError(name))
			continue
		}
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause(name, ruleError(fe)))
	}

	return errors.Join(joined...)
}

// fieldName drops the root struct name from the namespace: "items[0].quantity".
func fieldName(fe validatorv10.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func ruleError(fe validatorv10.FieldError) error {
	if fe.Param() != "" {
		return fmt.Errorf("%v does not satisfy '%s=%s'", fe.Value(), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("%v does not satisfy '%s'", fe.Value(), fe.Tag())
}
