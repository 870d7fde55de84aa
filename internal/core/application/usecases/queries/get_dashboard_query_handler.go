package queries

import (
	"context"
	"fmt"
	"time"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type GetDashboardQueryHandler struct {
	db     *gorm.DB
	policy services.AuthorizationPolicy
	now    func() time.Time
}

// NewGetDashboardQueryHandler creates the handler. now decides which day the
// sales trend ends on; nil means time.Now.
func NewGetDashboardQueryHandler(
	db *gorm.DB,
	policy services.AuthorizationPolicy,
	now func() time.Time,
) GetDashboardQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetDashboardQueryHandler{db: db, policy: policy, now: now}
}

func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	principal := query.Principal()
	if _, err := h.policy.Authorize(principal, services.ResourceDashboard, services.ActionView); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	businessID := principal.BusinessID.Bytes()

	var resp GetDashboardQueryResponse
	if err := h.revenue(db, businessID, &resp); err != nil {
		return GetDashboardQueryResponse{}, fmt.Errorf("revenue: %w", err)
	}

	trends, err := h.salesTrends(db, businessID)
	if err != nil {
		return GetDashboardQueryResponse{}, fmt.Errorf("sales trends: %w", err)
	}
	resp.SalesTrends = trends

	performance, err := h.workerPerformance(db, businessID)
	if err != nil {
		return GetDashboardQueryResponse{}, fmt.Errorf("worker performance: %w", err)
	}
	resp.WorkerPerformance = performance

	if resp.OrderStats, err = h.orderStats(db, businessID); err != nil {
		return GetDashboardQueryResponse{}, fmt.Errorf("order stats: %w", err)
	}

	return resp, nil
}

func (h GetDashboardQueryHandler) revenue(db *gorm.DB, businessID uuid.UUID, resp *GetDashboardQueryResponse) error {
	return db.Raw(`
		SELECT
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(amount) FILTER (WHERE payment_method = ?), 0),
			COALESCE(SUM(amount) FILTER (WHERE payment_method = ?), 0)
		FROM products
		WHERE business_id = ?
	`, product.Online.String(), product.Offline.String(), businessID).
		Row().
		Scan(&resp.TotalRevenue, &resp.OnlineRevenue, &resp.OfflineRevenue)
}

// salesTrends returns TrendDays points, oldest first, ending on today (UTC).
// Days without sales are reported with zero amount and count.
func (h GetDashboardQueryHandler) salesTrends(db *gorm.DB, businessID uuid.UUID) ([]SalesTrendPoint, error) {
	today := order.TruncateToDay(h.now())
	from := today.AddDate(0, 0, -(TrendDays - 1))

	rows, err := db.Raw(`
		SELECT date, SUM(amount), COUNT(*)
		FROM products
		WHERE business_id = ? AND date BETWEEN ?::date AND ?::date
		GROUP BY date
	`, businessID, from.Format(dateLayout), today.Format(dateLayout)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byDay := make(map[string]SalesTrendPoint, TrendDays)
	for rows.Next() {
		var (
			day   time.Time
			point SalesTrendPoint
		)
		if err = rows.Scan(&day, &point.Amount, &point.Count); err != nil {
			return nil, err
		}
		point.Date = day.UTC().Format(dateLayout)
		byDay[point.Date] = point
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	trends := make([]SalesTrendPoint, 0, TrendDays)
	for day := from; !day.After(today); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		point, ok := byDay[key]
		if !ok {
			point = SalesTrendPoint{Date: key, Amount: decimal.Zero}
		}
		trends = append(trends, point)
	}
	return trends, nil
}

func (h GetDashboardQueryHandler) workerPerformance(db *gorm.DB, businessID uuid.UUID) ([]WorkerPerformance, error) {
	rows, err := db.Raw(`
		SELECT
			u.id,
			u.name,
			COALESCE((SELECT SUM(p.amount) FROM products p WHERE p.created_by_id = u.id), 0),
			COUNT(o.id) FILTER (WHERE o.status = ?),
			COUNT(o.id) FILTER (WHERE o.status = ?),
			COUNT(o.id) FILTER (WHERE o.status = ?)
		FROM users u
		LEFT JOIN orders o ON o.worker_id = u.id
		WHERE u.business_id = ? AND u.role = ?
		GROUP BY u.id, u.name, u.created_at
		ORDER BY u.created_at, u.name
	`, int(order.Completed), int(order.Pending), int(order.InProgress),
		businessID, identity.RoleWorker.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	performance := make([]WorkerPerformance, 0)
	for rows.Next() {
		var (
			wp WorkerPerformance
			id uuid.UUID
		)
		err = rows.Scan(&id, &wp.Name, &wp.TotalSales, &wp.CompletedOrders, &wp.PendingOrders, &wp.InProgressOrders)
		if err != nil {
			return nil, err
		}
		if wp.WorkerID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		performance = append(performance, wp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return performance, nil
}

func (h GetDashboardQueryHandler) orderStats(db *gorm.DB, businessID uuid.UUID) (OrderStats, error) {
	var stats OrderStats
	err := db.Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM orders
		WHERE business_id = ?
	`, int(order.Pending), int(order.InProgress), int(order.Completed), businessID).
		Row().
		Scan(&stats.Total, &stats.Pending, &stats.InProgress, &stats.Completed)
	return stats, err
}
