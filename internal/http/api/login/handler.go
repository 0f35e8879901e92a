// Package login accepts form-encoded credentials and echoes them back.
package login

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/janisto/echo-heroes/internal/platform/respond"
	"github.com/janisto/echo-heroes/internal/platform/validate"
)

// Input holds the login form fields. Only form bodies are bound; the json
// tags name the echoed response. Nothing is persisted or checked against a
// user store.
type Input struct {
	Username string `form:"username" json:"username" validate:"required,min=8,max=25" example:"abcdefgh"`
	Password string `form:"password" json:"password" validate:"required,min=8"        example:"abcdefgh"`
}

// Register wires the login route into the provided group.
func Register(g *echo.Group) {
	g.POST("/login", loginHandler)
}

// loginHandler godoc
//
//	@Summary		Login form
//	@Description	Validates username (8-25 chars) and password (8+ chars) form fields and echoes them
//	@Tags			login
//	@Accept			x-www-form-urlencoded,mpfd
//	@Produce		json,application/cbor
//	@Param			username	formData	string	true	"Username"	minlength(8)	maxlength(25)
//	@Param			password	formData	string	true	"Password"	minlength(8)
//	@Success		200			{object}	Input
//	@Failure		422			{object}	respond.ProblemDetails
//	@Router			/login [post]
func loginHandler(c *echo.Context) error {
	var input Input
	if err := validate.Form(c, &input); err != nil {
		return err
	}
	return respond.Negotiate(c, http.StatusOK, input)
}
