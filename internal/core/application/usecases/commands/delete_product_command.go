package commands

import (
	"errors"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(principal identity.Principal, productID kernel.UUID) (DeleteProductCommand, error) {
	var idErr error
	if err := productID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if err := errors.Join(principal.Validate(), idErr); err != nil {
		return DeleteProductCommand{}, err
	}

	return DeleteProductCommand{
		principal: principal,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) Principal() identity.Principal { return c.principal }
func (c DeleteProductCommand) ProductID() kernel.UUID        { return c.productID }
