package http

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouterConfig holds what the router needs besides the handlers.
type RouterConfig struct {
	// SharedSecret is the bearer token required on /mcp and /api/v1.
	SharedSecret string
	Logger       *slog.Logger
}

// NewRouter wires the REST endpoints and the MCP streamable HTTP handler into
// one echo instance. /health is the only unauthenticated route.
func NewRouter(server *Server, mcpHandler http.Handler, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logger := cfg.Logger.With("component", "http")
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	auth := bearerAuth(cfg.SharedSecret)

	api := e.Group("/api/v1", auth)
	api.GET("/menu", server.GetMenu)
	api.GET("/vendors/:vendor_id/orders", server.ListVendorOrders)
	api.GET("/orders/:order_id", server.GetOrder)
	api.GET("/agents", server.ListAgents)

	e.Any("/mcp", echo.WrapHandler(mcpHandler), auth)

	return e
}

// bearerAuth accepts "Authorization: Bearer <secret>" and answers 401 otherwise.
func bearerAuth(secret string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		Validator: func(key string, _ echo.Context) (bool, error) {
			if secret == "" {
				return false, nil
			}
			return subtle.ConstantTimeCompare([]byte(key), []byte(secret)) == 1, nil
		},
		ErrorHandler: func(_ error, c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "Unauthorized"})
		},
	})
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	})
}
