package commands

import (
	"context"

	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/services"
	"inventory/internal/pkg/errs"
)

// UpdateOrderResult reports what an order update did, for callers that record
// lifecycle metrics.
type UpdateOrderResult struct {
	Order      *order.Order
	Kind       services.OrderUpdateKind
	From       order.Status
	WorkerName string
}

// UpdateOrderCommandHandler applies the order lifecycle state machine.
//
// Depending on the caller and the order, an update is one of:
//   - override: an Admin sets any field, worker or status directly
//   - claim: a Worker takes an unassigned order, optionally moving it forward
//   - progress: the assigned Worker moves the order forward
//
// Claims and progress are persisted with conditional writes, so two workers
// racing for the same order cannot both succeed.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AuthorizationPolicy
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AuthorizationPolicy) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (UpdateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderResult{}, err
	}

	principal := cmd.Principal()
	patch := cmd.Patch()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, principal.BusinessID, cmd.OrderID())
	if err != nil {
		return UpdateOrderResult{}, err
	}

	kind, err := h.policy.AuthorizeOrderUpdate(principal, o, patch.change())
	if err != nil {
		return UpdateOrderResult{}, err
	}

	from := o.Status()
	workerName := principal.Name
	switch kind {
	case services.OrderUpdateOverride:
		if workerName, err = h.override(ctx, uow, o, patch); err != nil {
			return UpdateOrderResult{}, err
		}
		err = orderRepo.Update(ctx, o)

	case services.OrderUpdateClaim:
		if err = o.Claim(principal.UserID); err != nil {
			return UpdateOrderResult{}, err
		}
		// A claim that restates the current status is a plain claim.
		if patch.Status != nil && *patch.Status != from {
			if err = o.Advance(principal.UserID, *patch.Status); err != nil {
				return UpdateOrderResult{}, err
			}
		}
		err = orderRepo.ClaimUnassigned(ctx, o)

	case services.OrderUpdateProgress:
		if err = o.Advance(principal.UserID, *patch.Status); err != nil {
			return UpdateOrderResult{}, err
		}
		err = orderRepo.UpdateStatus(ctx, o, from)

	default:
		return UpdateOrderResult{}, errs.NewForbiddenError("update order", "no update permitted")
	}
	if err != nil {
		return UpdateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderResult{}, err
	}

	return UpdateOrderResult{Order: o, Kind: kind, From: from, WorkerName: workerName}, nil
}

// override applies an Admin patch and returns the display name of the worker
// the order ends up with.
func (h UpdateOrderCommandHandler) override(ctx context.Context, uow OrderUoW, o *order.Order, patch OrderPatch) (string, error) {
	if patch.TouchesDetails() {
		if err := o.Revise(patch.apply(o.Details())); err != nil {
			return "", err
		}
	}

	workerName := ""
	switch {
	case patch.Unassign:
		if err := o.AssignWorker(nil); err != nil {
			return "", err
		}
	case patch.WorkerID != nil:
		worker, err := ensureWorker(ctx, uow.UserRepository(), o.BusinessID(), *patch.WorkerID)
		if err != nil {
			return "", err
		}
		if err := o.AssignWorker(patch.WorkerID); err != nil {
			return "", err
		}
		workerName = worker.Name()
	case o.IsAssigned():
		worker, err := uow.UserRepository().Get(ctx, o.BusinessID(), *o.Worker())
		if err != nil {
			return "", err
		}
		workerName = worker.Name()
	}

	if patch.Status != nil {
		if err := o.OverrideStatus(*patch.Status); err != nil {
			return "", err
		}
	}
	return workerName, nil
}
