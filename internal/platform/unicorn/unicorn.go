// Package unicorn defines the application's deliberate "teapot" rejection.
// Returning an *Error from any handler short-circuits the request; the
// central error handler renders it as 418 with a fixed message body.
package unicorn

import (
	"fmt"
	"net/http"
)

// Error carries the name of whatever caused the rejection.
type Error struct {
	Name string
}

// New returns an *Error for name.
func New(name string) *Error {
	return &Error{Name: name}
}

func (e *Error) Error() string {
	return e.Name + " is a unicorn"
}

// StatusCode implements echo.HTTPStatusCoder.
func (e *Error) StatusCode() int {
	return http.StatusTeapot
}

// Message returns the response message embedding the carried name.
func (e *Error) Message() string {
	return fmt.Sprintf("Oops! %s did something. There goes a rainbow...", e.Name)
}

// Body is the JSON payload written for an *Error.
type Body struct {
	Message string `json:"message" cbor:"message" example:"Oops! Unicorn Flying did something. There goes a rainbow..."`
}
