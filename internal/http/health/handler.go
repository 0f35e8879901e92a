// Package health serves the liveness and readiness probe.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"

	applog "github.com/janisto/echo-heroes/internal/platform/logging"
	"github.com/janisto/echo-heroes/internal/platform/respond"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Response is the payload for the health endpoint.
type Response struct {
	Status   string `json:"status"   cbor:"status"   example:"healthy"`
	Database string `json:"database" cbor:"database" example:"ok"`
}

// Handler returns the health check endpoint. It answers 503 when db cannot be pinged.
//
//	@Summary		Health check
//	@Tags			health
//	@Produce		json,application/cbor
//	@Success		200	{object}	Response
//	@Failure		503	{object}	respond.ProblemDetails
//	@Router			/health [get]
func Handler(db Pinger) echo.HandlerFunc {
	return func(c *echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			applog.LogError(ctx, "health check failed", err)
			return respond.Error503("database unavailable")
		}
		return respond.Negotiate(c, http.StatusOK, Response{Status: "healthy", Database: "ok"})
	}
}
