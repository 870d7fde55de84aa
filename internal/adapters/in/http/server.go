package http

import (
	"time"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/ports"
	"inventory/internal/metrics"

	"github.com/rs/zerolog"
)

// Handlers groups the use cases the HTTP surface dispatches to.
type Handlers struct {
	// Command handlers
	RegisterBusiness commands.RegisterBusinessCommandHandler
	Authenticate     commands.AuthenticateCommandHandler
	CreateWorker     commands.CreateWorkerCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	UpdateOrder      commands.UpdateOrderCommandHandler
	CreateProduct    commands.CreateProductCommandHandler
	UpdateProduct    commands.UpdateProductCommandHandler
	DeleteProduct    commands.DeleteProductCommandHandler

	// Query handlers
	ListOrders   queries.ListOrdersQueryHandler
	ListProducts queries.ListProductsQueryHandler
	ListWorkers  queries.ListWorkersQueryHandler
	GetDashboard queries.GetDashboardQueryHandler
}

// CookieConfig controls the session cookie written on login.
type CookieConfig struct {
	Secure bool
}

// Server implements the JSON API and the gated page endpoints.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	sessions ports.SessionCodec
	metrics  *metrics.Metrics
	logger   zerolog.Logger
	cookie   CookieConfig
	now      func() time.Time
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	handlers Handlers,
	sessions ports.SessionCodec,
	m *metrics.Metrics,
	logger zerolog.Logger,
	cookie CookieConfig,
) *Server {
	return &Server{
		handlers: handlers,
		sessions: sessions,
		metrics:  m,
		logger:   logger,
		cookie:   cookie,
		now:      time.Now,
	}
}
