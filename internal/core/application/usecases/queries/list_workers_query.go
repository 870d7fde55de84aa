package queries

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrListWorkersQueryIsNotConstructed = errors.New(
	"ListWorkersQuery must be created via NewListWorkersQuery constructor",
)

// ListWorkersQuery lists the Workers of the caller's business. Admin only.
type ListWorkersQuery struct {
	principal identity.Principal
	guard     guard.ConstructorGuard
}

func NewListWorkersQuery(principal identity.Principal) (ListWorkersQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListWorkersQuery{}, err
	}
	return ListWorkersQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q ListWorkersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkersQueryIsNotConstructed)
}

func (q ListWorkersQuery) Principal() identity.Principal {
	return q.principal
}

// ListWorkersQueryResponse carries the worker with the number of orders
// assigned to them and the number of sales they recorded.
type ListWorkersQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Email          string
	CreatedAt      time.Time
	AssignedOrders int64
	Sales          int64
}
