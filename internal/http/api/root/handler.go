// Package root serves the API greeting.
package root

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/janisto/echo-heroes/internal/platform/respond"
)

// Data is the greeting payload.
type Data struct {
	Message string `json:"message" cbor:"message" example:"Hello World"`
}

// Register wires the root route into the provided group.
func Register(g *echo.Group) {
	g.GET("/", getHandler)
}

// getHandler godoc
//
//	@Summary		Greeting
//	@Tags			root
//	@Produce		json,application/cbor
//	@Success		200	{object}	Data
//	@Router			/ [get]
func getHandler(c *echo.Context) error {
	return respond.Negotiate(c, http.StatusOK, Data{Message: "Hello World"})
}
