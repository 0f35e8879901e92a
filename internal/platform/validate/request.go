package validate

import (
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/labstack/echo/v5"
)

// Request binds the request into dst and validates it. Decoding failures are
// reported as *ValidationError so that malformed and invalid payloads share
// the same 422 rendering. A body over the size limit keeps its 413.
func Request(c *echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return bindError(err)
	}
	return c.Validate(dst)
}

// Form is Request restricted to form-encoded and multipart bodies.
func Form(c *echo.Context, dst any) error {
	base, _, _ := strings.Cut(c.Request().Header.Get(echo.HeaderContentType), ";")
	switch strings.TrimSpace(base) {
	case echo.MIMEApplicationForm, echo.MIMEMultipartForm:
		return Request(c, dst)
	default:
		return &ValidationError{
			Message: "request could not be decoded",
			Fields: []FieldError{{
				Field:   "body",
				Message: "body must be form encoded",
				Value:   base,
			}},
		}
	}
}

func bindError(err error) error {
	if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
		return err
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return &ValidationError{
			Message: "request could not be decoded",
			Fields: []FieldError{{
				Field:   ute.Field,
				Message: ute.Field + " must be " + jsonKind(ute.Type),
				Value:   ute.Value,
			}},
		}
	}

	return &ValidationError{
		Message: "request could not be decoded",
		Fields: []FieldError{{
			Field:   "body",
			Message: "body must match the declared schema",
		}},
	}
}

// jsonKind names the JSON type a Go type decodes from.
func jsonKind(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return "a valid value"
	}
}

// PathInt parses the named path parameter as an integer.
func PathInt(c *echo.Context, name string) (int, error) {
	raw := c.Param(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{
			Message: "validation failed",
			Fields: []FieldError{{
				Field:   name,
				Message: name + " must be an integer",
				Value:   raw,
			}},
		}
	}
	return n, nil
}

// QueryInt parses the named query parameter as an integer. It returns nil
// when the parameter is absent; an empty value is an error.
func QueryInt(c *echo.Context, name string) (*int, error) {
	query := c.QueryParams()
	if !query.Has(name) {
		return nil, nil
	}
	raw := query.Get(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &ValidationError{
			Message: "validation failed",
			Fields: []FieldError{{
				Field:   name,
				Message: name + " must be an integer",
				Value:   raw,
			}},
		}
	}
	return &n, nil
}

// ForbidExtra rejects query keys that dst does not declare through a
// `query` struct tag.
func ForbidExtra(values url.Values, dst any) error {
	allowed := queryKeys(reflect.TypeOf(dst))

	var extra []string
	for key := range values {
		if !slices.Contains(allowed, key) {
			extra = append(extra, key)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)

	fields := make([]FieldError, len(extra))
	for i, key := range extra {
		fields[i] = FieldError{
			Field:   key,
			Message: "extra fields not permitted",
			Value:   values.Get(key),
		}
	}
	return &ValidationError{Message: "validation failed", Fields: fields}
}

func queryKeys(t reflect.Type) []string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		if name := tagName(t.Field(i), "query"); name != "" {
			keys = append(keys, name)
		}
	}
	return keys
}
