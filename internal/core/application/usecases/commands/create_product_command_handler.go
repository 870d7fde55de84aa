package commands

import (
	"context"

	"inventory/internal/core/domain/model/product"
	"inventory/internal/core/domain/services"
)

type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.AuthorizationPolicy
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, policy services.AuthorizationPolicy) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle stores the sale under the caller's business and identity.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	principal := cmd.Principal()
	if _, err := h.policy.Authorize(principal, services.ResourceProduct, services.ActionCreate); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(principal.BusinessID, principal.UserID, cmd.Details())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
