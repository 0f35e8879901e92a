// Package docs serves the OpenAPI document and a Swagger UI page for it.
package docs

import (
	_ "embed"
	"net/http"
	"os"

	"github.com/labstack/echo/v5"

	"github.com/janisto/echo-heroes/internal/platform/respond"
)

//go:embed swagger-ui.html
var swaggerUI []byte

// Prefix is the path under which documentation is served. Security headers
// are skipped below it so the UI can load its assets.
const Prefix = "/api-docs"

// Register wires documentation routes:
//   - GET /api-docs/openapi.json serves the document at specPath.
//   - GET /api-docs serves the embedded Swagger UI.
func Register(e *echo.Echo, specPath string) {
	e.GET(Prefix+"/openapi.json", func(c *echo.Context) error {
		if _, err := os.Stat(specPath); err != nil {
			return respond.Error404("openapi document not available")
		}
		c.Response().Header().Set("Cache-Control", "no-cache")
		return c.File(specPath)
	})

	e.GET(Prefix, func(c *echo.Context) error {
		return c.HTMLBlob(http.StatusOK, swaggerUI)
	})
}
