// Package product provides the Product aggregate: a sale recorded against a business.
package product

import (
	"errors"
	"strings"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Details are the mutable fields of a sale.
type Details struct {
	CustomerName  string
	ProductName   string
	Date          time.Time
	Amount        decimal.Decimal
	PaymentMethod PaymentMethod
}

type Product struct {
	id          kernel.UUID
	businessID  kernel.UUID
	createdByID kernel.UUID
	details     Details

	guard guard.ConstructorGuard
}

func NewProduct(businessID, createdByID kernel.UUID, details Details) (*Product, error) {
	return RestoreProduct(kernel.NewUUID(), businessID, createdByID, details)
}

func RestoreProduct(id, businessID, createdByID kernel.UUID, details Details) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	var idErr, businessErr, creatorErr error
	if err := id.Validate(); err != nil {
		idErr = err
	}
	if err := businessID.Validate(); err != nil {
		businessErr = errs.NewValueIsRequiredErrorWithCause("businessId", err)
	}
	if err := createdByID.Validate(); err != nil {
		creatorErr = errs.NewValueIsRequiredErrorWithCause("createdById", err)
	}
	if err := errors.Join(idErr, businessErr, creatorErr, p.setDetails(details)); err != nil {
		return nil, err
	}

	p.id = id
	p.businessID = businessID
	p.createdByID = createdByID
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID          { return p.id }
func (p *Product) BusinessID() kernel.UUID  { return p.businessID }
func (p *Product) CreatedByID() kernel.UUID { return p.createdByID }
func (p *Product) Details() Details         { return p.details }

// Revise replaces the sale's details.
func (p *Product) Revise(details Details) error {
	return p.setDetails(details)
}

func (p *Product) setDetails(d Details) error {
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.ProductName = strings.TrimSpace(d.ProductName)

	var problems []error
	if d.CustomerName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("customerName"))
	}
	if d.ProductName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("productName"))
	}
	if d.Date.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("date"))
	}
	if err := order.ValidateMoney("amount", d.Amount); err != nil {
		problems = append(problems, err)
	}
	problems = append(problems, d.PaymentMethod.Validate())

	if err := errors.Join(problems...); err != nil {
		return err
	}
	d.Date = order.TruncateToDay(d.Date)
	p.details = d
	return nil
}
