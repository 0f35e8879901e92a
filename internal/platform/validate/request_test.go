package validate

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
)

func TestForbidExtra(t *testing.T) {
	if err := ForbidExtra(url.Values{"limit": {"5"}}, filterInput{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := ForbidExtra(url.Values{}, &filterInput{}); err != nil {
		t.Fatalf("expected no error for empty query, got %v", err)
	}

	err := ForbidExtra(url.Values{"limit": {"5"}, "tags": {"x"}, "extra": {"y"}}, filterInput{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(ve.Fields))
	}
	if ve.Fields[0].Field != "extra" || ve.Fields[1].Field != "tags" {
		t.Fatalf("expected sorted extra keys, got %+v", ve.Fields)
	}
	if ve.Fields[0].Message != "extra fields not permitted" {
		t.Fatalf("unexpected message: %s", ve.Fields[0].Message)
	}
}

func TestRequest_DecodeFailure(t *testing.T) {
	e := echo.New()
	e.Validator = New()

	var got error
	e.POST("/user", func(c *echo.Context) error {
		var input userInput
		got = Request(c, &input)
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"age":"old"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var ve *ValidationError
	if !errors.As(got, &ve) {
		t.Fatalf("expected *ValidationError, got %T", got)
	}
	if ve.Message != "request could not be decoded" {
		t.Fatalf("unexpected message: %s", ve.Message)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "age" {
		t.Fatalf("expected field 'age', got %+v", ve.Fields)
	}
	if ve.Fields[0].Message != "age must be an integer" || ve.Fields[0].Value != "string" {
		t.Fatalf("unexpected field error %+v", ve.Fields[0])
	}
}

func bindResult(t *testing.T, contentType, body string, bind func(*echo.Context, any) error) error {
	t.Helper()
	e := echo.New()
	e.Validator = New()

	var got error
	e.POST("/", func(c *echo.Context) error {
		var input struct {
			Name  string   `form:"name"  json:"name"  validate:"required"`
			Price *float64 `form:"price" json:"price"`
			Tags  []string `form:"tags"  json:"tags"`
		}
		got = bind(c, &input)
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	e.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestRequest_DecodeFailureLocations(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{"number as string", `{"name":"a","price":"abc"}`, "price", "price must be a number"},
		{"array as string", `{"name":"a","tags":"x"}`, "tags", "tags must be an array"},
		{"malformed JSON", `{"name":`, "body", "body must match the declared schema"},
		{"top-level array", `[1]`, "body", "body must match the declared schema"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bindResult(t, "application/json", tt.body, Request)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Fields[0].Field != tt.field || ve.Fields[0].Message != tt.message {
				t.Fatalf("expected %s: %s, got %+v", tt.field, tt.message, ve.Fields[0])
			}
		})
	}
}

func TestRequest_BodyTooLargeKeepsStatus(t *testing.T) {
	e := echo.New()
	e.Validator = New()
	e.Use(middleware.BodyLimit(8))

	var got error
	e.POST("/", func(c *echo.Context) error {
		var input userInput
		got = Request(c, &input)
		return nil
	})

	// No Content-Length, so the limit is hit while reading.
	req := httptest.NewRequest(http.MethodPost, "/", iotest.OneByteReader(strings.NewReader(`{"name":"`+strings.Repeat("x", 64)+`"}`)))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(httptest.NewRecorder(), req)

	if !errors.Is(got, echo.ErrStatusRequestEntityTooLarge) {
		t.Fatalf("expected 413 error, got %v", got)
	}
}

func TestForm(t *testing.T) {
	if err := bindResult(t, "application/x-www-form-urlencoded", "name=a", Form); err != nil {
		t.Fatalf("expected form body to bind, got %v", err)
	}

	err := bindResult(t, "application/json", `{"name":"a"}`, Form)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Fields[0].Field != "body" || ve.Fields[0].Message != "body must be form encoded" {
		t.Fatalf("unexpected field error %+v", ve.Fields[0])
	}
}

func TestRequest_ValidatesAfterBind(t *testing.T) {
	e := echo.New()
	e.Validator = New()

	var got error
	e.POST("/user", func(c *echo.Context) error {
		var input userInput
		got = Request(c, &input)
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"name":"A","email":"bad","age":1,"password":"p"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var ve *ValidationError
	if !errors.As(got, &ve) {
		t.Fatalf("expected *ValidationError, got %T", got)
	}
	if ve.Fields[0].Field != "email" {
		t.Fatalf("expected field 'email', got %q", ve.Fields[0].Field)
	}
}

func TestPathInt(t *testing.T) {
	e := echo.New()

	var (
		n   int
		err error
	)
	e.GET("/items/:item_id", func(c *echo.Context) error {
		n, err = PathInt(c, "item_id")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/items/12", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)
	if err != nil || n != 12 {
		t.Fatalf("expected 12, got %d (%v)", n, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/items/abc", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Fields[0].Value != "abc" {
		t.Fatalf("expected value 'abc', got %q", ve.Fields[0].Value)
	}
}

func TestQueryInt(t *testing.T) {
	e := echo.New()

	var (
		n   *int
		err error
	)
	e.GET("/heroes", func(c *echo.Context) error {
		n, err = QueryInt(c, "limit")
		return nil
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/heroes", nil))
	if err != nil || n != nil {
		t.Fatalf("expected nil for absent param, got %v (%v)", n, err)
	}

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/heroes?limit=0", nil))
	if err != nil || n == nil || *n != 0 {
		t.Fatalf("expected explicit 0, got %v (%v)", n, err)
	}

	for _, target := range []string{"/heroes?limit=ten", "/heroes?limit=", "/heroes?limit"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Fields[0].Field != "limit" {
			t.Fatalf("%s: expected limit validation error, got %v", target, err)
		}
	}
}
