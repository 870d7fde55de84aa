package order

import (
	"errors"
	"strings"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderAlreadyClaimed is the cause reported when a worker claims an order that
	// already has a worker.
	ErrOrderAlreadyClaimed = errors.New("order is already claimed")

	// ErrOrderNotAssignedToWorker is the cause reported when a worker acts on an order
	// held by someone else (or by nobody).
	ErrOrderNotAssignedToWorker = errors.New("order is not assigned to this worker")
)

// Details are the descriptive fields an Admin controls.
type Details struct {
	CustomerName  string
	OrderName     string
	Date          time.Time
	Location      string
	CeremonyDates []string
	Amount        decimal.Decimal
	WorkerAmount  decimal.Decimal
}

// Order is the aggregate root for a customer order inside one business.
type Order struct {
	id         kernel.UUID
	businessID kernel.UUID
	details    Details
	workerID   *kernel.UUID
	status     Status

	guard guard.ConstructorGuard
}

// NewOrder creates a PENDING order. workerID may be nil (unassigned).
func NewOrder(businessID kernel.UUID, details Details, workerID *kernel.UUID) (*Order, error) {
	return RestoreOrder(kernel.NewUUID(), businessID, details, Pending, workerID)
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(
	id, businessID kernel.UUID,
	details Details,
	status Status,
	workerID *kernel.UUID,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setBusinessID(businessID),
		o.setDetails(details),
		o.setStatus(status),
		o.setWorker(workerID),
	); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID         { return o.id }
func (o *Order) BusinessID() kernel.UUID { return o.businessID }
func (o *Order) Details() Details        { return o.details }
func (o *Order) Status() Status          { return o.status }

// Worker returns the assigned worker, or nil while unassigned.
func (o *Order) Worker() *kernel.UUID {
	if o.workerID == nil {
		return nil
	}
	id := *o.workerID
	return &id
}

func (o *Order) IsAssigned() bool {
	return o.workerID != nil
}

func (o *Order) IsAssignedTo(workerID kernel.UUID) bool {
	return kernel.SameUUID(o.workerID, workerID)
}

// Claim assigns an unassigned order to workerID. Status is left unchanged.
func (o *Order) Claim(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	if o.workerID != nil {
		return errs.NewForbiddenErrorWithCause("claim order", "order is already claimed", ErrOrderAlreadyClaimed)
	}
	o.workerID = &workerID
	return nil
}

// Advance applies a worker-initiated status transition. Only the assigned
// worker may advance the order, and only forward.
func (o *Order) Advance(workerID kernel.UUID, target Status) error {
	if !o.IsAssignedTo(workerID) {
		return errs.NewForbiddenErrorWithCause("change order status",
			"order is not assigned to you", ErrOrderNotAssignedToWorker)
	}
	next, err := o.status.AdvanceTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Revise replaces the descriptive fields (admin override).
func (o *Order) Revise(details Details) error {
	return o.setDetails(details)
}

// AssignWorker sets or clears (nil) the worker (admin override).
func (o *Order) AssignWorker(workerID *kernel.UUID) error {
	return o.setWorker(workerID)
}

// OverrideStatus sets any valid status without the transition guard (admin override).
func (o *Order) OverrideStatus(status Status) error {
	return o.setStatus(status)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBusinessID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("businessId", err)
	}
	o.businessID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setWorker(workerID *kernel.UUID) error {
	if workerID == nil {
		o.workerID = nil
		return nil
	}
	if err := workerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("workerId", err)
	}
	id := *workerID
	o.workerID = &id
	return nil
}

func (o *Order) setDetails(d Details) error {
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.OrderName = strings.TrimSpace(d.OrderName)
	d.Location = strings.TrimSpace(d.Location)

	var problems []error
	if d.CustomerName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("customerName"))
	}
	if d.OrderName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("orderName"))
	}
	if d.Date.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("date"))
	}
	if err := ValidateMoney("amount", d.Amount); err != nil {
		problems = append(problems, err)
	}
	if err := ValidateMoney("workerAmount", d.WorkerAmount); err != nil {
		problems = append(problems, err)
	}

	dates := make([]string, 0, len(d.CeremonyDates))
	for _, c := range d.CeremonyDates {
		if c = strings.TrimSpace(c); c != "" {
			dates = append(dates, c)
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	d.CeremonyDates = dates
	d.Date = TruncateToDay(d.Date)
	o.details = d
	return nil
}

// TruncateToDay normalises t to midnight UTC of its calendar day.
func TruncateToDay(t time.Time) time.Time {
	y, m, day := t.UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
