package commands_test

import (
	"context"
	"time"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/business"
	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/core/domain/model/user"
	"inventory/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBusinessRepository struct{ mock.Mock }

func (m *MockBusinessRepository) Add(ctx context.Context, b *business.Business) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBusinessRepository) Get(ctx context.Context, id kernel.UUID) (*business.Business, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*business.Business)
	return b, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, businessID, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, businessID, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, businessID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, businessID, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ClaimUnassigned(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, from order.Status) error {
	return m.Called(ctx, o, from).Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, businessID, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, businessID, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, businessID, id kernel.UUID) error {
	return m.Called(ctx, businessID, id).Error(0)
}

// MockUoW satisfies every narrow unit of work used by the handlers.
type MockUoW struct {
	mock.Mock

	businesses *MockBusinessRepository
	users      *MockUserRepository
	orders     *MockOrderRepository
	products   *MockProductRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		businesses: new(MockBusinessRepository),
		users:      new(MockUserRepository),
		orders:     new(MockOrderRepository),
		products:   new(MockProductRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) BusinessRepository() ports.BusinessRepository { return m.businesses }
func (m *MockUoW) UserRepository() ports.UserRepository         { return m.users }
func (m *MockUoW) OrderRepository() ports.OrderRepository       { return m.orders }
func (m *MockUoW) ProductRepository() ports.ProductRepository   { return m.products }

// expectTx registers Begin, Rollback and (optionally) Commit.
func (m *MockUoW) expectTx(commit bool) {
	m.On("Begin", mock.Anything).Return(nil).Once()
	if commit {
		m.On("Commit", mock.Anything).Return(nil).Once()
	}
	m.On("Rollback", mock.Anything).Return(nil).Once()
}

func (m *MockUoW) assertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.businesses.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.products.AssertExpectations(t)
}

type tenantFactory struct{ uow *MockUoW }

func (f tenantFactory) Create() commands.TenantUoW { return f.uow }

type userFactory struct{ uow *MockUoW }

func (f userFactory) Create() commands.UserUoW { return f.uow }

type orderFactory struct{ uow *MockUoW }

func (f orderFactory) Create() commands.OrderUoW { return f.uow }

type productFactory struct{ uow *MockUoW }

func (f productFactory) Create() commands.ProductUoW { return f.uow }

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, plain string) error {
	return m.Called(hash, plain).Error(0)
}

type MockSessionCodec struct{ mock.Mock }

func (m *MockSessionCodec) Issue(p identity.Principal) (string, time.Time, error) {
	args := m.Called(p)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockSessionCodec) Parse(token string) (identity.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(identity.Principal), args.Error(1)
}

func principal(businessID kernel.UUID, role identity.Role) identity.Principal {
	return identity.Principal{
		UserID:     kernel.NewUUID(),
		BusinessID: businessID,
		Name:       "caller",
		Email:      "caller@x.com",
		Role:       role,
	}
}
