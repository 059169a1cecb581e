package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// LoggerOptions of options for the request logger
type LoggerOptions struct {
	Skip bool
}

// Logger is a middleware writing one line per request to logger
func Logger(logger *zap.SugaredLogger, opts LoggerOptions) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		Skipper: func(echo.Context) bool {
			return opts.Skip
		},
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []interface{}{
				"id", v.RequestID,
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				logger.Errorw("request", append(fields, "error", v.Error)...)
				return nil
			}
			logger.Infow("request", fields...)
			return nil
		},
	})
}
