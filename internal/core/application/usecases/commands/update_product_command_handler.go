package commands

import (
	"context"

	"inventory/internal/core/domain/model/product"
	"inventory/internal/core/domain/services"
)

// UpdateProductCommandHandler edits a recorded sale. Workers may only edit
// their own sales; Admins may edit any sale of their business.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.AuthorizationPolicy
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory, policy services.AuthorizationPolicy) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	principal := cmd.Principal()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, principal.BusinessID, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeProductMutation(principal, p, services.ActionUpdate); err != nil {
		return nil, err
	}

	if err = p.Revise(cmd.Patch().apply(p.Details())); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
