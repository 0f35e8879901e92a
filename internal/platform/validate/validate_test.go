package validate

import (
	"errors"
	"testing"
)

type userInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Age      *int   `json:"age"      validate:"required,gte=0"`
	Password string `json:"password" validate:"required"`
}

type filterInput struct {
	Limit *int `query:"limit" validate:"omitempty,gte=0,lte=100"`
}

type pathInput struct {
	ID int `param:"item_id" validate:"even"`
}

type loginInput struct {
	Username string `form:"username" validate:"min=8,max=25"`
	Password string `form:"password" validate:"min=8"`
}

type imageInput struct {
	URL  string `json:"url"  validate:"required,http_url"`
	Name string `json:"name" validate:"required"`
}

type itemInput struct {
	Name  string     `json:"name"  validate:"required"`
	Image imageInput `json:"image"`
}

type modelInput struct {
	Model string `param:"model_name" validate:"oneof=alexnet resnet lenet"`
}

func intPtr(n int) *int { return &n }

func TestValidate_ValidInput(t *testing.T) {
	v := New()
	input := userInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Age:      intPtr(30),
		Password: "secret",
	}
	if err := v.Validate(input); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	v := New()
	err := v.Validate(userInput{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Message != "validation failed" {
		t.Fatalf("expected 'validation failed', got %q", ve.Message)
	}
	if len(ve.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %d", len(ve.Fields))
	}

	fieldMap := make(map[string]FieldError)
	for _, f := range ve.Fields {
		fieldMap[f.Field] = f
	}

	assertField(t, fieldMap, "name", "name is required")
	assertField(t, fieldMap, "email", "email is required")
	assertField(t, fieldMap, "age", "age is required")
	assertField(t, fieldMap, "password", "password is required")
}

func TestValidate_InvalidEmail(t *testing.T) {
	v := New()
	input := userInput{
		Name:     "Alice",
		Email:    "not-an-email",
		Age:      intPtr(30),
		Password: "secret",
	}
	err := v.Validate(input)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Fields) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(ve.Fields))
	}
	if ve.Fields[0].Field != "email" {
		t.Fatalf("expected field 'email', got %q", ve.Fields[0].Field)
	}
	if ve.Fields[0].Message != "email must be a valid email address" {
		t.Fatalf("unexpected message: %s", ve.Fields[0].Message)
	}
	if ve.Fields[0].Value != "not-an-email" {
		t.Fatalf("expected value 'not-an-email', got %q", ve.Fields[0].Value)
	}
}

func TestValidate_LimitBounds(t *testing.T) {
	v := New()

	for _, limit := range []*int{nil, intPtr(0), intPtr(100)} {
		if err := v.Validate(filterInput{Limit: limit}); err != nil {
			t.Fatalf("expected limit %v to pass, got %v", limit, err)
		}
	}

	err := v.Validate(filterInput{Limit: intPtr(101)})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Fields[0].Field != "limit" {
		t.Fatalf("expected field 'limit', got %q", ve.Fields[0].Field)
	}
	if ve.Fields[0].Message != "limit must be less than or equal to 100" {
		t.Fatalf("unexpected message: %s", ve.Fields[0].Message)
	}
	if ve.Fields[0].Value != "101" {
		t.Fatalf("expected value '101', got %q", ve.Fields[0].Value)
	}

	err = v.Validate(filterInput{Limit: intPtr(-1)})
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Fields[0].Message != "limit must be greater than or equal to 0" {
		t.Fatalf("unexpected message: %s", ve.Fields[0].Message)
	}
}

func TestValidate_EvenTag(t *testing.T) {
	v := New()
	if err := v.Validate(pathInput{ID: 4}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := v.Validate(pathInput{ID: 3})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Fields[0].Field != "item_id" {
		t.Fatalf("expected param tag name 'item_id', got %q", ve.Fields[0].Field)
	}
	if ve.Fields[0].Message != "item_id must be an even number" {
		t.Fatalf("unexpected message: %s", ve.Fields[0].Message)
	}
}

func TestValidate_FormTagNames(t *testing.T) {
	v := New()
	if err := v.Validate(loginInput{Username: "abcdefgh", Password: "abcdefgh"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := v.Validate(loginInput{Username: "short", Password: "abcdefgh"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Fields[0].Field != "username" {
		t.Fatalf("expected form tag name 'username', got %q", ve.Fields[0].Field)
	}
	if ve.Fields[0].Message != "username must be at least 8" {
		t.Fatalf("unexpected message: %s", ve.Fields[0].Message)
	}
}

func TestValidate_NestedFieldPath(t *testing.T) {
	v := New()
	input := itemInput{Name: "Foo", Image: imageInput{URL: "not a url", Name: "img"}}
	err := v.Validate(input)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Fields[0].Field != "image.url" {
		t.Fatalf("expected field 'image.url', got %q", ve.Fields[0].Field)
	}
	if ve.Fields[0].Message != "url must be a valid URL" {
		t.Fatalf("unexpected message: %s", ve.Fields[0].Message)
	}
}

func TestValidate_Oneof(t *testing.T) {
	v := New()
	if err := v.Validate(modelInput{Model: "resnet"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := v.Validate(modelInput{Model: "vgg"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Fields[0].Message != "model_name must be one of: alexnet resnet lenet" {
		t.Fatalf("unexpected message: %s", ve.Fields[0].Message)
	}
}

func TestValidationError_ErrorMethod(t *testing.T) {
	ve := &ValidationError{Message: "validation failed"}
	if ve.Error() != "validation failed" {
		t.Fatalf("expected 'validation failed', got %q", ve.Error())
	}
}

func assertField(t *testing.T, fields map[string]FieldError, name, expectedMsg string) {
	t.Helper()
	fe, ok := fields[name]
	if !ok {
		t.Fatalf("missing field error for %q", name)
	}
	if fe.Message != expectedMsg {
		t.Fatalf("field %q: expected message %q, got %q", name, expectedMsg, fe.Message)
	}
}
