package router

import (
	"net/http"

	"todo-go-backend/pkg/adapter/handler"
	"todo-go-backend/pkg/infrastructure/router/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Path of route
const (
	HealthCheckPath = "/health_check"
	TodosPath       = "/todos"
	TodoPath        = TodosPath + "/:id"
)

// CORSOptions is the cross-origin policy. A "*" entry allows everything.
type CORSOptions struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
}

// Options of router
type Options struct {
	CORS       CORSOptions
	Logger     *zap.SugaredLogger
	SkipLogger bool
}

// New creates route endpoint
func New(todo *handler.Todo, options Options) *echo.Echo {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger, middleware.LoggerOptions{Skip: options.SkipLogger}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(corsConfig(options.CORS)))

	e.GET(HealthCheckPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// The collection answers with and without the trailing slash.
	for _, p := range []string{TodosPath, TodosPath + "/"} {
		e.POST(p, todo.Create)
		e.GET(p, todo.List)
	}
	e.GET(TodoPath, todo.Get)
	e.PUT(TodoPath, todo.Replace)
	e.PATCH(TodoPath, todo.Patch)
	e.DELETE(TodoPath, todo.Delete)

	return e
}

func corsConfig(o CORSOptions) echomw.CORSConfig {
	cfg := echomw.CORSConfig{
		AllowOrigins:     o.AllowOrigins,
		AllowCredentials: o.AllowCredentials,
		AllowMethods:     o.AllowMethods,
		AllowHeaders:     o.AllowHeaders,
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}
	// Browsers do not honour a literal "*" on credentialed requests, so
	// wildcards are turned into echo's reflecting defaults.
	if wildcard(o.AllowOrigins) && o.AllowCredentials {
		cfg.UnsafeWildcardOriginWithAllowCredentials = true
	}
	if wildcard(o.AllowMethods) {
		cfg.AllowMethods = nil
	}
	if wildcard(o.AllowHeaders) {
		cfg.AllowHeaders = nil
	}
	return cfg
}

func wildcard(values []string) bool {
	for _, v := range values {
		if v == "*" {
			return true
		}
	}
	return false
}
