// Package routes wires every API feature package into one group.
package routes

import (
	"github.com/labstack/echo/v5"

	"github.com/janisto/echo-heroes/internal/http/api/files"
	"github.com/janisto/echo-heroes/internal/http/api/heroes"
	"github.com/janisto/echo-heroes/internal/http/api/items"
	"github.com/janisto/echo-heroes/internal/http/api/login"
	"github.com/janisto/echo-heroes/internal/http/api/models"
	"github.com/janisto/echo-heroes/internal/http/api/root"
	"github.com/janisto/echo-heroes/internal/http/api/users"
	"github.com/janisto/echo-heroes/internal/platform/auth"
	herosvc "github.com/janisto/echo-heroes/internal/service/hero"
)

// Register wires all API routes into the provided group.
func Register(g *echo.Group, verifier auth.Verifier, svc herosvc.Service) {
	root.Register(g)
	heroes.Register(g, svc)
	login.Register(g)
	files.Register(g)
	items.Register(g, verifier)
	models.Register(g)
	users.Register(g)
}
