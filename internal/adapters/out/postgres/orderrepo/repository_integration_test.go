package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"inventory/internal/adapters/out/postgres/businessrepo"
	"inventory/internal/adapters/out/postgres/orderrepo"
	"inventory/internal/adapters/out/postgres/pgtest"
	"inventory/internal/adapters/out/postgres/userrepo"
	"inventory/internal/core/domain/model/business"
	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/model/user"
	"inventory/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence and the
// conditional writes behind claims and status changes.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker

	acme  *business.Business
	bob   *user.User
	carol *user.User
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)

	ctx := context.Background()
	var err error
	suite.acme, err = business.NewBusiness("Acme")
	suite.Require().NoError(err)
	suite.Require().NoError(businessrepo.NewGormBusinessRepository(suite.db, suite.tracker).Add(ctx, suite.acme))

	users := userrepo.NewGormUserRepository(suite.db, suite.tracker)
	suite.bob, err = user.NewUser(suite.acme.ID(), "Bob", "bob@x.com", "h", identity.RoleWorker)
	suite.Require().NoError(err)
	suite.Require().NoError(users.Add(ctx, suite.bob))
	suite.carol, err = user.NewUser(suite.acme.ID(), "Carol", "carol@x.com", "h", identity.RoleWorker)
	suite.Require().NoError(err)
	suite.Require().NoError(users.Add(ctx, suite.carol))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(worker *kernel.UUID) *order.Order {
	o, err := order.NewOrder(suite.acme.ID(), order.Details{
		CustomerName:  "C1",
		OrderName:     "Wedding",
		Date:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Location:      "Hall A",
		CeremonyDates: []string{"2024-06-01", "2024-06-02"},
		Amount:        decimal.RequireFromString("100.00"),
		WorkerAmount:  decimal.RequireFromString("20.50"),
	}, worker)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder(nil)

	got, err := suite.repository.Get(ctx, suite.acme.ID(), o.ID())
	suite.Require().NoError(err)

	suite.True(got.ID().IsEqual(o.ID()))
	suite.Equal(order.Pending, got.Status())
	suite.Nil(got.Worker())
	suite.Equal("Hall A", got.Details().Location)
	suite.Equal([]string{"2024-06-01", "2024-06-02"}, got.Details().CeremonyDates)
	suite.True(decimal.RequireFromString("20.5").Equal(got.Details().WorkerAmount))
	suite.True(o.Details().Date.Equal(got.Details().Date))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_OtherBusinessIsNotFound() {
	o := suite.newOrder(nil)

	_, err := suite.repository.Get(context.Background(), kernel.NewUUID(), o.ID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownWorkerViolatesForeignKey() {
	ghost := kernel.NewUUID()
	o, err := order.NewOrder(suite.acme.ID(), order.Details{
		CustomerName: "C1", OrderName: "X", Date: time.Now(),
	}, &ghost)
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), o)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearsWorker() {
	ctx := context.Background()
	bobID := suite.bob.ID()
	o := suite.newOrder(&bobID)

	suite.Require().NoError(o.AssignWorker(nil))
	suite.Require().NoError(o.OverrideStatus(order.Completed))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, suite.acme.ID(), o.ID())
	suite.Require().NoError(err)
	suite.Nil(got.Worker())
	suite.Equal(order.Completed, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimUnassigned_OnlyOnce() {
	ctx := context.Background()
	o := suite.newOrder(nil)

	bobCopy, err := suite.repository.Get(ctx, suite.acme.ID(), o.ID())
	suite.Require().NoError(err)
	carolCopy, err := suite.repository.Get(ctx, suite.acme.ID(), o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(bobCopy.Claim(suite.bob.ID()))
	suite.Require().NoError(suite.repository.ClaimUnassigned(ctx, bobCopy))

	suite.Require().NoError(carolCopy.Claim(suite.carol.ID()))
	err = suite.repository.ClaimUnassigned(ctx, carolCopy)
	suite.ErrorIs(err, errs.ErrForbidden)
	suite.ErrorIs(err, order.ErrOrderAlreadyClaimed)

	got, err := suite.repository.Get(ctx, suite.acme.ID(), o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsAssignedTo(suite.bob.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimUnassigned_ConcurrentClaimsHaveOneWinner() {
	ctx := context.Background()
	o := suite.newOrder(nil)

	workers := []kernel.UUID{suite.bob.ID(), suite.carol.ID()}
	results := make([]error, len(workers))

	var wg sync.WaitGroup
	for i, workerID := range workers {
		copyOfOrder, err := suite.repository.Get(ctx, suite.acme.ID(), o.ID())
		suite.Require().NoError(err)
		suite.Require().NoError(copyOfOrder.Claim(workerID))

		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = suite.repository.ClaimUnassigned(ctx, copyOfOrder)
		}()
	}
	wg.Wait()

	var won, lost int
	for _, err := range results {
		if err == nil {
			won++
			continue
		}
		suite.ErrorIs(err, order.ErrOrderAlreadyClaimed)
		lost++
	}
	suite.Equal(1, won)
	suite.Equal(1, lost)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_CompareAndSet() {
	ctx := context.Background()
	bobID := suite.bob.ID()
	o := suite.newOrder(&bobID)

	stale, err := suite.repository.Get(ctx, suite.acme.ID(), o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(o.Advance(bobID, order.InProgress))
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, o, order.Pending))

	// stale copy still believes the order is PENDING
	suite.Require().NoError(stale.Advance(bobID, order.InProgress))
	err = suite.repository.UpdateStatus(ctx, stale, order.Pending)
	suite.ErrorIs(err, errs.ErrForbidden)

	got, err := suite.repository.Get(ctx, suite.acme.ID(), o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, got.Status())
}
