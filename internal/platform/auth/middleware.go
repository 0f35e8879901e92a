package auth

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v5"

	applog "github.com/janisto/echo-heroes/internal/platform/logging"
	"github.com/janisto/echo-heroes/internal/platform/respond"
)

const principalKey = "principal"

// Middleware returns Echo middleware requiring a verified bearer token.
// Failures answer 401 with a WWW-Authenticate challenge.
func Middleware(verifier Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			ctx := c.Request().Context()

			token, err := ExtractBearerToken(c.Request().Header.Get("Authorization"))
			if err != nil {
				applog.LogWarn(ctx, "auth failed", slog.String("reason", reason(err)))
				c.Response().Header().Set("WWW-Authenticate", "Bearer")
				return respond.Error401("not authenticated")
			}

			p, err := verifier.Verify(ctx, token)
			if err != nil {
				applog.LogWarn(ctx, "auth failed", slog.String("reason", reason(err)))
				c.Response().Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				return respond.Error401("invalid or expired token")
			}

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// reason returns a log-safe category; the token itself is never logged.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrNoToken):
		return "no_token"
	case errors.Is(err, ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	default:
		return "unknown"
	}
}

// PrincipalFromEchoContext returns the principal stored by Middleware.
func PrincipalFromEchoContext(c *echo.Context) (*Principal, error) {
	return echo.ContextGet[*Principal](c, principalKey)
}
