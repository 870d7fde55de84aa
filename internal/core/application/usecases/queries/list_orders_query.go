package queries

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders visible to a session: the whole business
// for an Admin, own and unassigned orders for a Worker.
//
// Example:
//
//	query, err := NewListOrdersQuery(principal)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	principal identity.Principal
	guard     guard.ConstructorGuard
}

func NewListOrdersQuery(principal identity.Principal) (ListOrdersQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Principal() identity.Principal {
	return q.principal
}

// ListOrdersQueryResponse is one order row. WorkerName is read from the
// referenced user and is empty for unassigned orders.
type ListOrdersQueryResponse struct {
	ID            kernel.UUID
	CustomerName  string
	OrderName     string
	Date          time.Time
	Location      string
	CeremonyDates []string
	Amount        decimal.Decimal
	WorkerAmount  decimal.Decimal
	WorkerID      *kernel.UUID
	WorkerName    string
	Status        order.Status
	CreatedAt     time.Time
}
