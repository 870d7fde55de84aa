package http

import (
	"context"
	"net/http"

	"inventory/internal/core/domain/model/identity"

	"filippo.io/csrf"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the API, the gated pages and the
// operational endpoints.
func (s *Server) NewRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := LoadSpec(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}
	specJSON, err := registerSwagger(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			event := s.logger.Info()
			if v.Status >= http.StatusInternalServerError {
				event = s.logger.Error()
			}
			if v.Error != nil {
				event = event.Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}))
	// Rejects cross-origin browser requests carrying the session cookie.
	e.Use(echo.WrapMiddleware(csrf.New().Handler))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, specJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Pages
	e.GET(identity.RoleAdmin.LoginPath(), s.LoginPage(identity.RoleAdmin))
	e.GET(identity.RoleWorker.LoginPath(), s.LoginPage(identity.RoleWorker))

	admin := e.Group("/admin", s.requireRole(identity.RoleAdmin))
	admin.GET("", s.Page)
	admin.GET("/*", s.Page)

	worker := e.Group("/worker", s.requireRole(identity.RoleWorker))
	worker.GET("", s.Page)
	worker.GET("/*", s.Page)

	// API. The session is checked before the body is validated.
	validate := validator.Middleware
	api := e.Group("/api/v1")

	api.POST("/register", s.Register, validate)
	api.POST("/login", s.Login, validate)
	api.POST("/login/admin", s.LoginAdmin, validate)
	api.POST("/login/worker", s.LoginWorker, validate)
	api.POST("/logout", s.Logout)
	api.GET("/session", s.GetSession, s.requireSession)

	api.GET("/orders", s.ListOrders, s.requireSession, validate)
	api.POST("/orders", s.CreateOrder, s.requireSession, validate)
	api.PUT("/orders/:id", s.UpdateOrder, s.requireSession, validate)

	api.GET("/products", s.ListProducts, s.requireSession, validate)
	api.POST("/products", s.CreateProduct, s.requireSession, validate)
	api.DELETE("/products", s.DeleteProductByQuery, s.requireSession, validate)
	api.PUT("/products/:id", s.UpdateProduct, s.requireSession, validate)
	api.DELETE("/products/:id", s.DeleteProduct, s.requireSession, validate)

	api.GET("/workers", s.ListWorkers, s.requireSession, validate)
	api.POST("/workers", s.CreateWorker, s.requireSession, validate)

	api.GET("/dashboard", s.GetDashboard, s.requireSession, validate)

	return e, nil
}
