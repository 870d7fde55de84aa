package commands_test

import (
	"testing"
	"time"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/model/user"
	"inventory/internal/core/domain/services"
	"inventory/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderDetails() order.Details {
	return order.Details{
		CustomerName: "C1",
		OrderName:    "Wedding",
		Date:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(100),
		WorkerAmount: decimal.NewFromInt(20),
	}
}

func storedOrder(t *testing.T, businessID kernel.UUID, worker *kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), businessID, orderDetails(), status, worker)
	require.NoError(t, err)
	return o
}

func statusPtr(s order.Status) *order.Status { return &s }

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	admin := principal(kernel.NewUUID(), identity.RoleAdmin)
	cmd, err := commands.NewCreateOrderCommand(admin, orderDetails(), nil)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(true)
	uow.orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	res, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, res.Order.Status())
	assert.True(t, res.Order.BusinessID().IsEqual(admin.BusinessID))
	assert.False(t, res.Order.IsAssigned())
	assert.Empty(t, res.WorkerName)
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_AssignedReportsWorkerName(t *testing.T) {
	admin := principal(kernel.NewUUID(), identity.RoleAdmin)
	bob, err := user.NewUser(admin.BusinessID, "Bob", "bob@x.com", "h", identity.RoleWorker)
	require.NoError(t, err)
	bobID := bob.ID()
	cmd, err := commands.NewCreateOrderCommand(admin, orderDetails(), &bobID)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(true)
	uow.users.On("Get", mock.Anything, admin.BusinessID, bobID).Return(bob, nil).Once()
	uow.orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	res, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.True(t, res.Order.IsAssignedTo(bobID))
	assert.Equal(t, "Bob", res.WorkerName)
	uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_AssignedWorkerMustBelongToBusiness(t *testing.T) {
	admin := principal(kernel.NewUUID(), identity.RoleAdmin)
	workerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(admin, orderDetails(), &workerID)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(false)
	uow.users.On("Get", mock.Anything, admin.BusinessID, workerID).
		Return(nil, errs.NewObjectNotFoundError("user", workerID)).Once()

	h := commands.NewCreateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	_, err = h.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AdminCannotBeAssigned(t *testing.T) {
	admin := principal(kernel.NewUUID(), identity.RoleAdmin)
	other, err := user.NewUser(admin.BusinessID, "Alice", "alice@x.com", "h", identity.RoleAdmin)
	require.NoError(t, err)
	otherID := other.ID()
	cmd, _ := commands.NewCreateOrderCommand(admin, orderDetails(), &otherID)

	uow := newMockUoW()
	uow.expectTx(false)
	uow.users.On("Get", mock.Anything, admin.BusinessID, otherID).Return(other, nil).Once()

	h := commands.NewCreateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	_, err = h.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_WorkerIsForbidden(t *testing.T) {
	worker := principal(kernel.NewUUID(), identity.RoleWorker)
	cmd, _ := commands.NewCreateOrderCommand(worker, orderDetails(), nil)
	uow := newMockUoW()

	h := commands.NewCreateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	_, err := h.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestUpdateOrderCommandHandler_Claim(t *testing.T) {
	businessID := kernel.NewUUID()
	bob := principal(businessID, identity.RoleWorker)
	o := storedOrder(t, businessID, nil, order.Pending)

	cmd, err := commands.NewUpdateOrderCommand(bob, o.ID(), commands.OrderPatch{WorkerID: &bob.UserID})
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(true)
	uow.orders.On("Get", mock.Anything, businessID, o.ID()).Return(o, nil).Once()
	uow.orders.On("ClaimUnassigned", mock.Anything, o).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	res, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, services.OrderUpdateClaim, res.Kind)
	assert.True(t, res.Order.IsAssignedTo(bob.UserID))
	assert.Equal(t, order.Pending, res.Order.Status())
	assert.Equal(t, bob.Name, res.WorkerName)
	uow.assertAll(t)
}

func TestUpdateOrderCommandHandler_ClaimWithStatus(t *testing.T) {
	businessID := kernel.NewUUID()
	bob := principal(businessID, identity.RoleWorker)
	o := storedOrder(t, businessID, nil, order.Pending)

	cmd, _ := commands.NewUpdateOrderCommand(bob, o.ID(), commands.OrderPatch{
		WorkerID: &bob.UserID, Status: statusPtr(order.InProgress),
	})

	uow := newMockUoW()
	uow.expectTx(true)
	uow.orders.On("Get", mock.Anything, businessID, o.ID()).Return(o, nil).Once()
	uow.orders.On("ClaimUnassigned", mock.Anything, o).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	res, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProgress, res.Order.Status())
	assert.Equal(t, order.Pending, res.From)
}

func TestUpdateOrderCommandHandler_ClaimRestatingCurrentStatus(t *testing.T) {
	businessID := kernel.NewUUID()
	bob := principal(businessID, identity.RoleWorker)
	o := storedOrder(t, businessID, nil, order.Pending)

	cmd, _ := commands.NewUpdateOrderCommand(bob, o.ID(), commands.OrderPatch{
		WorkerID: &bob.UserID, Status: statusPtr(order.Pending),
	})

	uow := newMockUoW()
	uow.expectTx(true)
	uow.orders.On("Get", mock.Anything, businessID, o.ID()).Return(o, nil).Once()
	uow.orders.On("ClaimUnassigned", mock.Anything, o).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	res, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, services.OrderUpdateClaim, res.Kind)
	assert.True(t, res.Order.IsAssignedTo(bob.UserID))
	assert.Equal(t, order.Pending, res.Order.Status())
	uow.assertAll(t)
}

func TestUpdateOrderCommandHandler_ProgressToSameStatusIsForbidden(t *testing.T) {
	businessID := kernel.NewUUID()
	bob := principal(businessID, identity.RoleWorker)
	o := storedOrder(t, businessID, &bob.UserID, order.InProgress)

	cmd, _ := commands.NewUpdateOrderCommand(bob, o.ID(), commands.OrderPatch{Status: statusPtr(order.InProgress)})

	uow := newMockUoW()
	uow.expectTx(false)
	uow.orders.On("Get", mock.Anything, businessID, o.ID()).Return(o, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	_, err := h.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrForbidden)
	uow.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_LostClaimRace(t *testing.T) {
	businessID := kernel.NewUUID()
	carol := principal(businessID, identity.RoleWorker)
	o := storedOrder(t, businessID, nil, order.Pending)

	cmd, _ := commands.NewUpdateOrderCommand(carol, o.ID(), commands.OrderPatch{WorkerID: &carol.UserID})

	uow := newMockUoW()
	uow.expectTx(false)
	uow.orders.On("Get", mock.Anything, businessID, o.ID()).Return(o, nil).Once()
	uow.orders.On("ClaimUnassigned", mock.Anything, o).
		Return(errs.NewForbiddenErrorWithCause("claim order", "order is already claimed", order.ErrOrderAlreadyClaimed)).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	_, err := h.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, order.ErrOrderAlreadyClaimed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_SecondClaimerDenied(t *testing.T) {
	businessID := kernel.NewUUID()
	bob := principal(businessID, identity.RoleWorker)
	carol := principal(businessID, identity.RoleWorker)
	o := storedOrder(t, businessID, &bob.UserID, order.Pending)

	cmd, _ := commands.NewUpdateOrderCommand(carol, o.ID(), commands.OrderPatch{WorkerID: &carol.UserID})

	uow := newMockUoW()
	uow.expectTx(false)
	uow.orders.On("Get", mock.Anything, businessID, o.ID()).Return(o, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	_, err := h.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.True(t, o.IsAssignedTo(bob.UserID))
	uow.orders.AssertNotCalled(t, "ClaimUnassigned", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Progress(t *testing.T) {
	businessID := kernel.NewUUID()
	bob := principal(businessID, identity.RoleWorker)
	o := storedOrder(t, businessID, &bob.UserID, order.InProgress)

	cmd, _ := commands.NewUpdateOrderCommand(bob, o.ID(), commands.OrderPatch{Status: statusPtr(order.Completed)})

	uow := newMockUoW()
	uow.expectTx(true)
	uow.orders.On("Get", mock.Anything, businessID, o.ID()).Return(o, nil).Once()
	uow.orders.On("UpdateStatus", mock.Anything, o, order.InProgress).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	res, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, services.OrderUpdateProgress, res.Kind)
	assert.Equal(t, order.Completed, res.Order.Status())
	uow.assertAll(t)
}

func TestUpdateOrderCommandHandler_WorkerCannotRevert(t *testing.T) {
	businessID := kernel.NewUUID()
	bob := principal(businessID, identity.RoleWorker)
	o := storedOrder(t, businessID, &bob.UserID, order.Completed)

	cmd, _ := commands.NewUpdateOrderCommand(bob, o.ID(), commands.OrderPatch{Status: statusPtr(order.Pending)})

	uow := newMockUoW()
	uow.expectTx(false)
	uow.orders.On("Get", mock.Anything, businessID, o.ID()).Return(o, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	_, err := h.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.ErrorIs(t, err, order.ErrStatusTransitionIsNotAllowed)
	uow.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_CrossTenantIsNotFound(t *testing.T) {
	admin := principal(kernel.NewUUID(), identity.RoleAdmin)
	orderID := kernel.NewUUID()

	cmd, _ := commands.NewUpdateOrderCommand(admin, orderID, commands.OrderPatch{Status: statusPtr(order.Completed)})

	uow := newMockUoW()
	uow.expectTx(false)
	uow.orders.On("Get", mock.Anything, admin.BusinessID, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	_, err := h.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderCommandHandler_AdminOverride(t *testing.T) {
	businessID := kernel.NewUUID()
	admin := principal(businessID, identity.RoleAdmin)
	bob, err := user.NewUser(businessID, "Bob", "bob@x.com", "h", identity.RoleWorker)
	require.NoError(t, err)
	bobID := bob.ID()
	o := storedOrder(t, businessID, nil, order.Completed)

	name := "Reception"
	amount := decimal.RequireFromString("250.50")
	cmd, err := commands.NewUpdateOrderCommand(admin, o.ID(), commands.OrderPatch{
		OrderName: &name,
		Amount:    &amount,
		WorkerID:  &bobID,
		Status:    statusPtr(order.Pending),
	})
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(true)
	uow.orders.On("Get", mock.Anything, businessID, o.ID()).Return(o, nil).Once()
	uow.users.On("Get", mock.Anything, businessID, bobID).Return(bob, nil).Once()
	uow.orders.On("Update", mock.Anything, o).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	res, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, services.OrderUpdateOverride, res.Kind)
	assert.Equal(t, order.Pending, res.Order.Status())
	assert.True(t, res.Order.IsAssignedTo(bobID))
	assert.Equal(t, "Reception", res.Order.Details().OrderName)
	assert.Equal(t, "C1", res.Order.Details().CustomerName)
	assert.True(t, amount.Equal(res.Order.Details().Amount))
	assert.Equal(t, "Bob", res.WorkerName)
	uow.assertAll(t)
}

func TestUpdateOrderCommandHandler_AdminEditKeepsAssigneeName(t *testing.T) {
	businessID := kernel.NewUUID()
	admin := principal(businessID, identity.RoleAdmin)
	bob, err := user.NewUser(businessID, "Bob", "bob@x.com", "h", identity.RoleWorker)
	require.NoError(t, err)
	bobID := bob.ID()
	o := storedOrder(t, businessID, &bobID, order.InProgress)

	location := "Hall B"
	cmd, err := commands.NewUpdateOrderCommand(admin, o.ID(), commands.OrderPatch{Location: &location})
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(true)
	uow.orders.On("Get", mock.Anything, businessID, o.ID()).Return(o, nil).Once()
	uow.users.On("Get", mock.Anything, businessID, bobID).Return(bob, nil).Once()
	uow.orders.On("Update", mock.Anything, o).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	res, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "Hall B", res.Order.Details().Location)
	assert.Equal(t, "Bob", res.WorkerName)
	uow.assertAll(t)
}

func TestUpdateOrderCommandHandler_AdminUnassign(t *testing.T) {
	businessID := kernel.NewUUID()
	admin := principal(businessID, identity.RoleAdmin)
	bob := kernel.NewUUID()
	o := storedOrder(t, businessID, &bob, order.InProgress)

	cmd, _ := commands.NewUpdateOrderCommand(admin, o.ID(), commands.OrderPatch{Unassign: true})

	uow := newMockUoW()
	uow.expectTx(true)
	uow.orders.On("Get", mock.Anything, businessID, o.ID()).Return(o, nil).Once()
	uow.orders.On("Update", mock.Anything, o).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(orderFactory{uow}, services.NewAuthorizationPolicy())
	res, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.False(t, res.Order.IsAssigned())
	assert.Empty(t, res.WorkerName)
}

func TestNewUpdateOrderCommand_Validation(t *testing.T) {
	admin := principal(kernel.NewUUID(), identity.RoleAdmin)
	worker := kernel.NewUUID()

	_, err := commands.NewUpdateOrderCommand(admin, kernel.NewUUID(), commands.OrderPatch{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateOrderCommand(admin, kernel.NewUUID(), commands.OrderPatch{WorkerID: &worker, Unassign: true})
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateOrderCommand(admin, kernel.NewUUID(), commands.OrderPatch{Status: statusPtr(order.Unknown)})
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
