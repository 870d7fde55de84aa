package commands

import (
	"context"
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/model/user"
	"inventory/internal/core/domain/services"
	"inventory/internal/core/ports"
	"inventory/internal/pkg/errs"
)

// CreateOrderResult is the stored order and the display name of its worker,
// empty when the order is unassigned.
type CreateOrderResult struct {
	Order      *order.Order
	WorkerName string
}

// CreateOrderCommandHandler handles order creation by an Admin.
// The order is stamped with the caller's business and starts PENDING; an
// optional worker must be a Worker of that same business.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AuthorizationPolicy
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AuthorizationPolicy) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	principal := cmd.Principal()
	if _, err := h.policy.Authorize(principal, services.ResourceOrder, services.ActionCreate); err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(principal.BusinessID, cmd.Details(), cmd.WorkerID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workerName := ""
	if workerID := cmd.WorkerID(); workerID != nil {
		worker, err := ensureWorker(ctx, uow.UserRepository(), principal.BusinessID, *workerID)
		if err != nil {
			return CreateOrderResult{}, err
		}
		workerName = worker.Name()
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{Order: o, WorkerName: workerName}, nil
}

// ensureWorker loads id and checks that it is a Worker of the business. Admins and users of
// other businesses are reported as not found.
func ensureWorker(ctx context.Context, users ports.UserRepository, businessID, id kernel.UUID) (*user.User, error) {
	u, err := users.Get(ctx, businessID, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewObjectNotFoundErrorWithCause("worker", id, err)
	}
	if err != nil {
		return nil, err
	}
	if !u.IsWorker() {
		return nil, errs.NewObjectNotFoundError("worker", id)
	}
	return u, nil
}
