package commands

import (
	"errors"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand records a sale. The sale is attributed to the caller.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	details   product.Details

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(principal identity.Principal, details product.Details) (CreateProductCommand, error) {
	if err := principal.Validate(); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{
		principal: principal,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Principal() identity.Principal { return c.principal }
func (c CreateProductCommand) Details() product.Details      { return c.details }
