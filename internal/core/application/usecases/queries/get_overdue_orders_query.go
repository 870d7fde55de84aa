package queries

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery counts, per business, the orders dated before asOf's
// day that are not COMPLETED. It runs without a session and is used by the
// scheduled scan only.
type GetOverdueOrdersQuery struct {
	asOf  time.Time
	guard guard.ConstructorGuard
}

func NewGetOverdueOrdersQuery(asOf time.Time) GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{asOf: asOf, guard: guard.NewConstructorGuard()}
}

func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

func (q GetOverdueOrdersQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueOrdersQueryResponse is reported for every business, including
// those with nothing overdue.
type GetOverdueOrdersQueryResponse struct {
	BusinessID   kernel.UUID
	BusinessName string
	Overdue      int64
}
