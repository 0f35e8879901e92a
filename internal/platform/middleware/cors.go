package middleware

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
)

// CORS returns Echo middleware allowing the given origins. An empty list allows any origin.
func CORS(origins ...string) echo.MiddlewareFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
			"X-Token",
			"traceparent",
		},
		ExposeHeaders: []string{
			"Link",
			HeaderXRequestID,
			HeaderXProcessTime,
			"X-Error",
		},
		MaxAge: 600,
	})
}
