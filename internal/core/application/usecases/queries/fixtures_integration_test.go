package queries_test

import (
	"context"
	"time"

	"inventory/internal/adapters/out/postgres/businessrepo"
	"inventory/internal/adapters/out/postgres/orderrepo"
	"inventory/internal/adapters/out/postgres/pgtest"
	"inventory/internal/adapters/out/postgres/productrepo"
	"inventory/internal/adapters/out/postgres/userrepo"
	"inventory/internal/core/domain/model/business"
	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/core/domain/model/user"
	"inventory/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

// tenantFixture seeds two businesses: Acme with Alice (admin), Bob and Carol
// (workers), and Globex with Gina (admin) and Greg (worker).
type tenantFixture struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	policy    services.AuthorizationPolicy

	orders   *orderrepo.GormOrderRepository
	products *productrepo.GormProductRepository

	acme, globex      *business.Business
	alice, bob, carol *user.User
	gina, greg        *user.User
}

func (f *tenantFixture) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	f.Require().NoError(err)
	f.container = container
	f.db = db
	f.policy = services.NewAuthorizationPolicy()
	f.orders = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	f.products = productrepo.NewGormProductRepository(db, &mockAggregateTracker{})
}

func (f *tenantFixture) TearDownSuite() {
	if f.container != nil {
		f.Require().NoError(f.container.Terminate(context.Background()))
	}
}

func (f *tenantFixture) SetupTest() {
	f.Require().NoError(pgtest.Truncate(f.db))

	f.acme = f.addBusiness("Acme")
	f.alice = f.addUser(f.acme, "Alice", "alice@x.com", identity.RoleAdmin)
	f.bob = f.addUser(f.acme, "Bob", "bob@x.com", identity.RoleWorker)
	f.carol = f.addUser(f.acme, "Carol", "carol@x.com", identity.RoleWorker)

	f.globex = f.addBusiness("Globex")
	f.gina = f.addUser(f.globex, "Gina", "gina@x.com", identity.RoleAdmin)
	f.greg = f.addUser(f.globex, "Greg", "greg@x.com", identity.RoleWorker)
}

func (f *tenantFixture) addBusiness(name string) *business.Business {
	b, err := business.NewBusiness(name)
	f.Require().NoError(err)
	f.Require().NoError(businessrepo.NewGormBusinessRepository(f.db, &mockAggregateTracker{}).
		Add(context.Background(), b))
	return b
}

func (f *tenantFixture) addUser(b *business.Business, name, email string, role identity.Role) *user.User {
	u, err := user.NewUser(b.ID(), name, email, "hash", role)
	f.Require().NoError(err)
	f.Require().NoError(userrepo.NewGormUserRepository(f.db, &mockAggregateTracker{}).
		Add(context.Background(), u))
	// keep created_at ordering deterministic
	time.Sleep(2 * time.Millisecond)
	return u
}

func (f *tenantFixture) addOrder(
	b *business.Business,
	name string,
	date time.Time,
	worker *user.User,
	status order.Status,
) *order.Order {
	var workerID *kernel.UUID
	if worker != nil {
		id := worker.ID()
		workerID = &id
	}

	o, err := order.NewOrder(b.ID(), order.Details{
		CustomerName:  "C1",
		OrderName:     name,
		Date:          date,
		CeremonyDates: []string{date.Format("2006-01-02")},
		Amount:        decimal.NewFromInt(100),
		WorkerAmount:  decimal.NewFromInt(20),
	}, workerID)
	f.Require().NoError(err)
	if status != order.Pending {
		f.Require().NoError(o.OverrideStatus(status))
	}
	f.Require().NoError(f.orders.Add(context.Background(), o))
	return o
}

func (f *tenantFixture) addProduct(
	creator *user.User,
	name string,
	date time.Time,
	amount string,
	method product.PaymentMethod,
) *product.Product {
	p, err := product.NewProduct(creator.BusinessID(), creator.ID(), product.Details{
		CustomerName:  "Eve",
		ProductName:   name,
		Date:          date,
		Amount:        decimal.RequireFromString(amount),
		PaymentMethod: method,
	})
	f.Require().NoError(err)
	f.Require().NoError(f.products.Add(context.Background(), p))
	return p
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
