package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

const (
	// HeaderXRequestID is the canonical request ID header name.
	HeaderXRequestID = "X-Request-ID"

	// RequestIDKey is the echo.Context key holding the request ID.
	RequestIDKey = "request_id"

	maxRequestIDLength = 128
)

// acceptRequestID reports whether a client supplied id is safe to echo and log:
// non-empty, bounded, printable ASCII only.
func acceptRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x20 || id[i] > 0x7E {
			return false
		}
	}
	return true
}

// RequestID returns Echo middleware that tags each request with an identifier,
// reusing an acceptable incoming X-Request-ID or generating a UUIDv4.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get(HeaderXRequestID)
			if !acceptRequestID(id) {
				id = uuid.NewString()
			}
			c.Set(RequestIDKey, id)
			c.Response().Header().Set(HeaderXRequestID, id)
			return next(c)
		}
	}
}
