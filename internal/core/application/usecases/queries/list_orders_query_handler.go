package queries

import (
	"context"
	"strings"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AuthorizationPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB, policy services.AuthorizationPolicy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: policy}
}

// Handle returns orders newest date first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	principal := query.Principal()
	scope, err := h.policy.Authorize(principal, services.ResourceOrder, services.ActionList)
	if err != nil {
		return nil, err
	}

	var sql strings.Builder
	sql.WriteString(`
		SELECT
			o.id,
			o.customer_name,
			o.order_name,
			o.date,
			o.location,
			o.ceremony_dates,
			o.amount,
			o.worker_amount,
			o.worker_id,
			COALESCE(u.name, ''),
			o.status,
			o.created_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.worker_id
		WHERE o.business_id = ?`)
	args := []any{principal.BusinessID.Bytes()}

	if scope == services.ScopeOwnOrUnassigned {
		sql.WriteString(` AND (o.worker_id = ? OR o.worker_id IS NULL)`)
		args = append(args, principal.UserID.Bytes())
	}
	sql.WriteString(` ORDER BY o.date DESC, o.created_at DESC`)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp          ListOrdersQueryResponse
			id            uuid.UUID
			workerID      uuid.NullUUID
			ceremonyDates datatypes.JSONSlice[string]
			status        int
		)

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&resp.OrderName,
			&resp.Date,
			&resp.Location,
			&ceremonyDates,
			&resp.Amount,
			&resp.WorkerAmount,
			&workerID,
			&resp.WorkerName,
			&status,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if resp.WorkerID, err = nullableUUID(workerID); err != nil {
			return nil, err
		}
		resp.CeremonyDates = []string(ceremonyDates)
		resp.Status = order.Status(status)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func nullableUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // NULL column
	}
	v, err := kernel.UUIDFromGoogle(id.UUID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
