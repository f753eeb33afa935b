// Package validate wraps go-playground/validator so that failures are
// reported with the names callers actually use (JSON argument names for
// tools, koanf keys for configuration) instead of Go field names.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks structs against their `validate` tags.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that names fields after the given struct tag
// (e.g. "json" or "koanf").
func New(tagName string) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get(tagName), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s. The returned error lists every failing field.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// describe turns one field failure into a readable sentence.
func describe(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("'%s' must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("'%s' must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("'%s' must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("'%s' must be greater than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "gtefield":
		return fmt.Sprintf("'%s' must be greater than or equal to '%s'", field, lowerFirst(fe.Param()))
	case "contains":
		return fmt.Sprintf("'%s' must contain %q", field, fe.Param())
	case "http_url":
		return fmt.Sprintf("'%s' must be an http(s) URL", field)
	default:
		return fmt.Sprintf("'%s' failed the '%s' check", field, fe.Tag())
	}
}

// fieldPath names the failing field; slice elements read as "severities[1]".
func fieldPath(fe validator.FieldError) string {
	return fe.Field()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
