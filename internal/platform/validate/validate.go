package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError represents a single field validation failure.
type FieldError struct {
	Field   string
	Message string
	Value   string
}

// ValidationError is returned when input validation fails.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AppValidator wraps go-playground/validator for Echo's Validator interface.
type AppValidator struct {
	v *validator.Validate
}

// New creates a new AppValidator with the custom "even" tag registered.
func New() *AppValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param", "form"} {
			if name := tagName(fld, tag); name != "" {
				return name
			}
		}
		return fld.Name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("even", validateEven)

	return &AppValidator{v: v}
}

// Validate validates the given struct and returns a *ValidationError on failure.
func (av *AppValidator) Validate(i any) error {
	err := av.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]FieldError, len(ve))
		for idx, fe := range ve {
			fields[idx] = FieldError{
				Field:   fieldPath(fe),
				Message: buildMessage(fe),
				Value:   formatValue(fe.Value()),
			}
		}
		return &ValidationError{
			Message: "validation failed",
			Fields:  fields,
		}
	}

	return &ValidationError{Message: err.Error()}
}

func tagName(fld reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}

// fieldPath returns the dotted field path without the root struct name,
// e.g. "item.image.url" for nested bodies and "name" for flat ones.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func formatValue(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return fmt.Sprintf("%v", rv.Elem().Interface())
	}
	return fmt.Sprintf("%v", v)
}

func buildMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "gte":
		return field + " must be greater than or equal to " + fe.Param()
	case "lte":
		return field + " must be less than or equal to " + fe.Param()
	case "email":
		return field + " must be a valid email address"
	case "url", "http_url":
		return field + " must be a valid URL"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "even":
		return field + " must be an even number"
	default:
		return field + " failed on " + fe.Tag() + " validation"
	}
}
