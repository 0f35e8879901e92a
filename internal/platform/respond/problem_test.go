package respond

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewError(t *testing.T) {
	p := NewError(http.StatusTeapot, "custom message")
	if p.Type != "about:blank" {
		t.Fatalf("expected type 'about:blank', got %q", p.Type)
	}
	if p.Title != "I'm a teapot" {
		t.Fatalf("expected title \"I'm a teapot\", got %q", p.Title)
	}
	if p.Status != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", p.Status)
	}
	if p.Detail != "custom message" {
		t.Fatalf("expected detail 'custom message', got %q", p.Detail)
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(string) *ProblemDetails
		status int
	}{
		{"Error400", Error400, http.StatusBadRequest},
		{"Error401", Error401, http.StatusUnauthorized},
		{"Error404", Error404, http.StatusNotFound},
		{"Error417", Error417, http.StatusExpectationFailed},
		{"Error500", Error500, http.StatusInternalServerError},
		{"Error503", Error503, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.fn("detail")
			if p.Status != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, p.Status)
			}
			if p.StatusCode() != tt.status {
				t.Fatalf("StatusCode(): expected %d, got %d", tt.status, p.StatusCode())
			}
			if p.Title != http.StatusText(tt.status) {
				t.Fatalf("expected title %q, got %q", http.StatusText(tt.status), p.Title)
			}
		})
	}
}

func TestError422WithFields(t *testing.T) {
	p := Error422("validation failed",
		ErrorDetail{Message: "name is required", Location: "name"},
		ErrorDetail{Message: "email must be a valid email address", Location: "email", Value: "x"},
	)
	if p.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", p.Status)
	}
	if len(p.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(p.Errors))
	}
}

func TestProblemDetailsError(t *testing.T) {
	if got := Error404("hero not found").Error(); got != "404 Not Found: hero not found" {
		t.Fatalf("unexpected error string %q", got)
	}
	if got := NewError(http.StatusBadRequest, "").Error(); got != "400 Bad Request" {
		t.Fatalf("unexpected error string %q", got)
	}

	var err error = Error400("bad")
	var pd *ProblemDetails
	if !errors.As(err, &pd) {
		t.Fatal("expected errors.As to match *ProblemDetails")
	}
}
