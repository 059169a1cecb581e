package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
)

// RequestID tags every request with a ULID unless the caller sent an
// X-Request-ID header.
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string {
			return ulid.Make().String()
		},
	})
}
