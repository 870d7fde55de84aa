package queries

import (
	"errors"
	"time"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery lists recorded sales: every sale of the business for an
// Admin, only the caller's own sales for a Worker.
type ListProductsQuery struct {
	principal identity.Principal
	guard     guard.ConstructorGuard
}

func NewListProductsQuery(principal identity.Principal) (ListProductsQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListProductsQuery{}, err
	}
	return ListProductsQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) Principal() identity.Principal {
	return q.principal
}

type ListProductsQueryResponse struct {
	ID            kernel.UUID
	CustomerName  string
	ProductName   string
	Date          time.Time
	Amount        decimal.Decimal
	PaymentMethod product.PaymentMethod
	CreatedByID   kernel.UUID
	CreatedByName string
	CreatedAt     time.Time
}
