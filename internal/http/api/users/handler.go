package users

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v5"

	applog "github.com/janisto/echo-heroes/internal/platform/logging"
	"github.com/janisto/echo-heroes/internal/platform/respond"
	"github.com/janisto/echo-heroes/internal/platform/validate"
)

// Register wires user routes into the provided group.
func Register(g *echo.Group) {
	g.POST("/user", createHandler)
}

// createHandler godoc
//
//	@Summary		Register user
//	@Description	Validates a user and echoes it back without the password
//	@Tags			users
//	@Accept			json
//	@Produce		json,application/cbor
//	@Param			body	body		UserIn	true	"User"
//	@Success		201		{object}	UserOut
//	@Failure		422		{object}	respond.ProblemDetails
//	@Router			/user [post]
func createHandler(c *echo.Context) error {
	var input UserIn
	if err := validate.Request(c, &input); err != nil {
		return err
	}

	applog.LogInfo(c.Request().Context(), "user received", slog.String("email", input.Email))
	return respond.Negotiate(c, http.StatusCreated, ToOut(input))
}
