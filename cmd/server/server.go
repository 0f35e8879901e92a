package main

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/janisto/echo-heroes/internal/http/api/routes"
	"github.com/janisto/echo-heroes/internal/http/docs"
	"github.com/janisto/echo-heroes/internal/http/health"
	"github.com/janisto/echo-heroes/internal/platform/auth"
	"github.com/janisto/echo-heroes/internal/platform/config"
	applog "github.com/janisto/echo-heroes/internal/platform/logging"
	"github.com/janisto/echo-heroes/internal/platform/metrics"
	appmiddleware "github.com/janisto/echo-heroes/internal/platform/middleware"
	"github.com/janisto/echo-heroes/internal/platform/respond"
	"github.com/janisto/echo-heroes/internal/platform/validate"
	herosvc "github.com/janisto/echo-heroes/internal/service/hero"
)

// deps are the long-lived collaborators the HTTP layer is built from.
type deps struct {
	cfg      *config.Config
	db       health.Pinger
	heroes   herosvc.Service
	verifier auth.Verifier
	metrics  *metrics.Metrics // nil when disabled
}

// newVerifier picks JWT verification when a secret is configured, opaque tokens otherwise.
func newVerifier(cfg config.AuthConfig) auth.Verifier {
	if cfg.JWTSecret != "" {
		return auth.NewJWTVerifier(cfg.JWTSecret)
	}
	return auth.OpaqueVerifier{}
}

func newEcho(d deps) *echo.Echo {
	e := echo.New()
	e.Validator = validate.New()
	e.HTTPErrorHandler = respond.NewHTTPErrorHandler()
	e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	e.Logger = applog.Logger()

	e.Use(
		appmiddleware.Security(docs.Prefix),
		appmiddleware.CORS(d.cfg.Server.CORSOrigins...),
		appmiddleware.RequestID(),
		middleware.BodyLimit(d.cfg.Server.BodyLimit),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	e.GET("/health", health.Handler(d.db))
	docs.Register(e, d.cfg.Docs.SpecPath)
	if d.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.metrics.Handler()))
	}

	routes.Register(e.Group(""), d.verifier, d.heroes)
	return e
}

// newHandler returns the full request pipeline: process-time stamping and
// metrics around the Echo router.
func newHandler(d deps) http.Handler {
	var h http.Handler = newEcho(d)
	if d.metrics != nil {
		h = d.metrics.Instrument(h)
	}
	return appmiddleware.ProcessTime(h)
}
