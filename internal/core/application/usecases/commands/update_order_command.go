package commands

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/services"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderPatch lists the fields an update request carries. Nil means "leave as is".
type OrderPatch struct {
	CustomerName  *string
	OrderName     *string
	Date          *time.Time
	Location      *string
	CeremonyDates []string
	Amount        *decimal.Decimal
	WorkerAmount  *decimal.Decimal

	WorkerID *kernel.UUID
	Unassign bool
	Status   *order.Status
}

// TouchesDetails reports whether any descriptive field is present.
func (p OrderPatch) TouchesDetails() bool {
	return p.CustomerName != nil || p.OrderName != nil || p.Date != nil || p.Location != nil ||
		p.CeremonyDates != nil || p.Amount != nil || p.WorkerAmount != nil
}

func (p OrderPatch) IsEmpty() bool {
	return !p.TouchesDetails() && p.WorkerID == nil && !p.Unassign && p.Status == nil
}

func (p OrderPatch) change() services.OrderChange {
	return services.OrderChange{
		WorkerID: p.WorkerID,
		Unassign: p.Unassign,
		Status:   p.Status,
		Details:  p.TouchesDetails(),
	}
}

func (p OrderPatch) apply(d order.Details) order.Details {
	if p.CustomerName != nil {
		d.CustomerName = *p.CustomerName
	}
	if p.OrderName != nil {
		d.OrderName = *p.OrderName
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Location != nil {
		d.Location = *p.Location
	}
	if p.CeremonyDates != nil {
		d.CeremonyDates = p.CeremonyDates
	}
	if p.Amount != nil {
		d.Amount = *p.Amount
	}
	if p.WorkerAmount != nil {
		d.WorkerAmount = *p.WorkerAmount
	}
	return d
}

// UpdateOrderCommand represents any change to an existing order: an Admin edit,
// a Worker claim, or a Worker status change. The authorization policy decides
// which of these it is.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	orderID   kernel.UUID
	patch     OrderPatch

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(principal identity.Principal, orderID kernel.UUID, patch OrderPatch) (UpdateOrderCommand, error) {
	var problems []error
	problems = append(problems, principal.Validate())
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("id", err))
	}
	if patch.IsEmpty() {
		problems = append(problems, errs.NewValueIsRequiredError("update fields"))
	}
	if patch.Unassign && patch.WorkerID != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("unassign",
			errors.New("cannot assign and unassign a worker at once")))
	}
	if patch.Status != nil {
		problems = append(problems, patch.Status.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		principal: principal,
		orderID:   orderID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Principal() identity.Principal { return c.principal }
func (c UpdateOrderCommand) OrderID() kernel.UUID          { return c.orderID }
func (c UpdateOrderCommand) Patch() OrderPatch             { return c.patch }
