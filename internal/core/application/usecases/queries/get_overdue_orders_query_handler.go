package queries

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := order.TruncateToDay(query.AsOf()).Format(dateLayout)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT b.id, b.name, COUNT(o.id)
		FROM businesses b
		LEFT JOIN orders o
			ON o.business_id = b.id
			AND o.date < ?::date
			AND o.status <> ?
		GROUP BY b.id, b.name
		ORDER BY b.name
	`, today, int(order.Completed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]GetOverdueOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp GetOverdueOrdersQueryResponse
			id   uuid.UUID
		)
		if err = rows.Scan(&id, &resp.BusinessName, &resp.Overdue); err != nil {
			return nil, err
		}
		if resp.BusinessID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		result = append(result, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
