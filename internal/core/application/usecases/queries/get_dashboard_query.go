package queries

import (
	"errors"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// TrendDays is the length of the sales trend window, today included.
const TrendDays = 7

// GetDashboardQuery aggregates revenue, sales trends, worker performance and
// order counts for the caller's business. Admin only.
type GetDashboardQuery struct {
	principal identity.Principal
	guard     guard.ConstructorGuard
}

func NewGetDashboardQuery(principal identity.Principal) (GetDashboardQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetDashboardQuery{}, err
	}
	return GetDashboardQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

func (q GetDashboardQuery) Principal() identity.Principal {
	return q.principal
}

type GetDashboardQueryResponse struct {
	TotalRevenue      decimal.Decimal
	OnlineRevenue     decimal.Decimal
	OfflineRevenue    decimal.Decimal
	SalesTrends       []SalesTrendPoint
	WorkerPerformance []WorkerPerformance
	OrderStats        OrderStats
}

// SalesTrendPoint is one UTC day. Date is formatted YYYY-MM-DD.
type SalesTrendPoint struct {
	Date   string
	Amount decimal.Decimal
	Count  int64
}

type WorkerPerformance struct {
	WorkerID         kernel.UUID
	Name             string
	TotalSales       decimal.Decimal
	CompletedOrders  int64
	PendingOrders    int64
	InProgressOrders int64
}

type OrderStats struct {
	Total      int64
	Pending    int64
	InProgress int64
	Completed  int64
}
