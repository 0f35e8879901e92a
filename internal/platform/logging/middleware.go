package logging

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v5"
)

// RequestLogger returns Echo middleware that stores a logger enriched with
// trace and request ids in the request context. The logger already in the
// context (or the global one) is the base.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			header := c.Request().Header.Get(traceparentHeader)
			reqID, _ := c.Get("request_id").(string)

			ctx := c.Request().Context()
			ctx = WithLogger(ctx, loggerWithTrace(LoggerFromContext(ctx), header, reqID))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// AccessLogger returns Echo middleware that logs a summary of each completed request.
func AccessLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()

			err := next(c)

			status, size := 0, 0
			if resp, unwrapErr := echo.UnwrapResponse(c.Response()); unwrapErr == nil {
				status = resp.Status
				size = int(resp.Size)
			}

			LoggerFromContext(c.Request().Context()).LogAttrs(c.Request().Context(), slog.LevelInfo, "request completed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", size),
				slog.Duration("duration", time.Since(start)),
			)

			return err
		}
	}
}
