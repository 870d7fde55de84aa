package queries

import (
	"context"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListWorkersQueryHandler struct {
	db     *gorm.DB
	policy services.AuthorizationPolicy
}

func NewListWorkersQueryHandler(db *gorm.DB, policy services.AuthorizationPolicy) ListWorkersQueryHandler {
	return ListWorkersQueryHandler{db: db, policy: policy}
}

func (h ListWorkersQueryHandler) Handle(
	ctx context.Context,
	query ListWorkersQuery,
) ([]ListWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	principal := query.Principal()
	if _, err := h.policy.Authorize(principal, services.ResourceWorker, services.ActionList); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.name,
			u.email,
			u.created_at,
			(SELECT COUNT(*) FROM orders o WHERE o.worker_id = u.id),
			(SELECT COUNT(*) FROM products p WHERE p.created_by_id = u.id)
		FROM users u
		WHERE u.business_id = ? AND u.role = ?
		ORDER BY u.created_at, u.name
	`, principal.BusinessID.Bytes(), identity.RoleWorker.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workers := make([]ListWorkersQueryResponse, 0)
	for rows.Next() {
		var (
			resp ListWorkersQueryResponse
			id   uuid.UUID
		)

		err = rows.Scan(&id, &resp.Name, &resp.Email, &resp.CreatedAt, &resp.AssignedOrders, &resp.Sales)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		workers = append(workers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}
