package commands

import (
	"errors"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents an Admin registering a new customer order.
// The status is not part of the command: new orders always start PENDING.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(principal, order.Details{
//	    CustomerName: "C1",
//	    OrderName:    "Wedding",
//	    Date:         time.Now(),
//	    Amount:       decimal.NewFromInt(100),
//	    WorkerAmount: decimal.NewFromInt(20),
//	}, nil)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	details   order.Details
	workerID  *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	principal identity.Principal,
	details order.Details,
	workerID *kernel.UUID,
) (CreateOrderCommand, error) {
	if err := principal.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		principal: principal,
		details:   details,
		workerID:  workerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Principal() identity.Principal { return c.principal }
func (c CreateOrderCommand) Details() order.Details        { return c.details }
func (c CreateOrderCommand) WorkerID() *kernel.UUID        { return c.workerID }
