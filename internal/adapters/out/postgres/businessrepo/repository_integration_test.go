package businessrepo_test

import (
	"context"
	"testing"

	"inventory/internal/adapters/out/postgres/businessrepo"
	"inventory/internal/adapters/out/postgres/pgtest"
	"inventory/internal/core/domain/model/business"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

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

type BusinessRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *businessrepo.GormBusinessRepository
	tracker    *MockAggregateTracker
}

func TestBusinessRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessRepositoryIntegrationTestSuite))
}

func (suite *BusinessRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *BusinessRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.tracker = new(MockAggregateTracker)
	suite.repository = businessrepo.NewGormBusinessRepository(suite.db, suite.tracker)
}

func (suite *BusinessRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BusinessRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	b, err := business.NewBusiness("Acme")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", b.ID(), b).Once()

	suite.Require().NoError(suite.repository.Add(ctx, b))

	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Equal("Acme", got.Name())
	suite.True(got.MatchesName("ACME"))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BusinessRepositoryIntegrationTestSuite) TestAdd_DuplicateID() {
	ctx := context.Background()
	b, err := business.NewBusiness("Acme")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", b.ID(), b).Once()
	suite.Require().NoError(suite.repository.Add(ctx, b))

	err = suite.repository.Add(ctx, b)

	suite.ErrorIs(err, errs.ErrAlreadyExists)
}

func (suite *BusinessRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}
