package commands

import (
	"context"

	"inventory/internal/core/domain/services"
)

// DeleteProductCommandHandler removes a recorded sale. The row is re-read
// inside the transaction so that stale or foreign identifiers fail as not found.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.AuthorizationPolicy
}

func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory, policy services.AuthorizationPolicy) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	principal := cmd.Principal()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, principal.BusinessID, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeProductMutation(principal, p, services.ActionDelete); err != nil {
		return err
	}

	if err = repo.Delete(ctx, principal.BusinessID, p.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
