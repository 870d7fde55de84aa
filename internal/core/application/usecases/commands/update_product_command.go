package commands

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// ProductPatch lists the fields an update request carries. Nil means "leave as is".
type ProductPatch struct {
	CustomerName  *string
	ProductName   *string
	Date          *time.Time
	Amount        *decimal.Decimal
	PaymentMethod *product.PaymentMethod
}

func (p ProductPatch) IsEmpty() bool {
	return p.CustomerName == nil && p.ProductName == nil && p.Date == nil &&
		p.Amount == nil && p.PaymentMethod == nil
}

func (p ProductPatch) apply(d product.Details) product.Details {
	if p.CustomerName != nil {
		d.CustomerName = *p.CustomerName
	}
	if p.ProductName != nil {
		d.ProductName = *p.ProductName
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Amount != nil {
		d.Amount = *p.Amount
	}
	if p.PaymentMethod != nil {
		d.PaymentMethod = *p.PaymentMethod
	}
	return d
}

type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	productID kernel.UUID
	patch     ProductPatch

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(principal identity.Principal, productID kernel.UUID, patch ProductPatch) (UpdateProductCommand, error) {
	var problems []error
	problems = append(problems, principal.Validate())
	if err := productID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("id", err))
	}
	if patch.IsEmpty() {
		problems = append(problems, errs.NewValueIsRequiredError("update fields"))
	}
	if err := errors.Join(problems...); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		principal: principal,
		productID: productID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) Principal() identity.Principal { return c.principal }
func (c UpdateProductCommand) ProductID() kernel.UUID        { return c.productID }
func (c UpdateProductCommand) Patch() ProductPatch           { return c.patch }
