package cmd

import (
	"context"

	httpin "inventory/internal/adapters/in/http"
	"inventory/internal/adapters/out/password"
	"inventory/internal/adapters/out/postgres"
	"inventory/internal/adapters/out/session"
	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/services"
	"inventory/internal/jobs"
	"inventory/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     services.AuthorizationPolicy
	hasher     *password.BcryptHasher
	sessions   *session.JWTCodec
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

// NewCompositionRoot wires the adapters. An invalid session secret or bcrypt
// cost is returned as an error so the process stops before serving.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger zerolog.Logger) (*CompositionRoot, error) {
	hasher, err := password.NewBcryptHasher(config.BcryptCost)
	if err != nil {
		return nil, err
	}
	sessions, err := session.NewJWTCodec(config.SessionSecret, config.SessionTTL)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		policy:     services.NewAuthorizationPolicy(),
		hasher:     hasher,
		sessions:   sessions,
		metrics:    metrics.New(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) tenantUoWFactory() commands.TenantUoWFactory {
	return FuncTenantUoWFactory(func() commands.TenantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterBusinessCommandHandler() commands.RegisterBusinessCommandHandler {
	return commands.NewRegisterBusinessCommandHandler(c.tenantUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateAuthenticateCommandHandler() commands.AuthenticateCommandHandler {
	return commands.NewAuthenticateCommandHandler(c.tenantUoWFactory(), c.hasher, c.sessions)
}

func (c *CompositionRoot) CreateCreateWorkerCommandHandler() commands.CreateWorkerCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkerCommandHandler(f, c.hasher, c.policy)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListWorkersQueryHandler() queries.ListWorkersQueryHandler {
	return queries.NewListWorkersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB, c.policy, nil)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOverdueOrdersQueryHandler(),
		c.metrics,
		c.config.OverdueScanSchedule,
		c.logger,
	)
}

// CreateHTTPServer builds the echo instance with every route registered.
func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*echo.Echo, error) {
	server := httpin.NewServer(
		httpin.Handlers{
			RegisterBusiness: c.CreateRegisterBusinessCommandHandler(),
			Authenticate:     c.CreateAuthenticateCommandHandler(),
			CreateWorker:     c.CreateCreateWorkerCommandHandler(),
			CreateOrder:      c.CreateCreateOrderCommandHandler(),
			UpdateOrder:      c.CreateUpdateOrderCommandHandler(),
			CreateProduct:    c.CreateCreateProductCommandHandler(),
			UpdateProduct:    c.CreateUpdateProductCommandHandler(),
			DeleteProduct:    c.CreateDeleteProductCommandHandler(),
			ListOrders:       c.CreateListOrdersQueryHandler(),
			ListProducts:     c.CreateListProductsQueryHandler(),
			ListWorkers:      c.CreateListWorkersQueryHandler(),
			GetDashboard:     c.CreateGetDashboardQueryHandler(),
		},
		c.sessions,
		c.metrics,
		c.logger,
		httpin.CookieConfig{Secure: c.config.CookieSecure},
	)
	return server.NewRouter(ctx)
}

type FuncTenantUoWFactory func() commands.TenantUoW

func (f FuncTenantUoWFactory) Create() commands.TenantUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
