// Package validator wraps go-playground/validator for the struct tags used by entities and config.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates structs against their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports field names as written in yaml tags when present.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(tagName)

	return &Validator{validate: validate}
}

// Struct validates s and flattens validation failures into one readable error.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate struct")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if fe.Param() == "" {
		return field + " failed '" + fe.Tag() + "'"
	}

	return field + " failed '" + fe.Tag() + "=" + fe.Param() + "'"
}

func tagName(field reflect.StructField) string {
	for _, key := range []string{"yaml", "json"} {
		name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}
