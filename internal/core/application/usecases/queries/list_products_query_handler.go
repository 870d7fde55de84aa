package queries

import (
	"context"
	"strings"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListProductsQueryHandler struct {
	db     *gorm.DB
	policy services.AuthorizationPolicy
}

func NewListProductsQueryHandler(db *gorm.DB, policy services.AuthorizationPolicy) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db, policy: policy}
}

// Handle returns sales newest date first together with the name of the user
// who recorded each one.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	principal := query.Principal()
	scope, err := h.policy.Authorize(principal, services.ResourceProduct, services.ActionList)
	if err != nil {
		return nil, err
	}

	var sql strings.Builder
	sql.WriteString(`
		SELECT
			p.id,
			p.customer_name,
			p.product_name,
			p.date,
			p.amount,
			p.payment_method,
			p.created_by_id,
			u.name,
			p.created_at
		FROM products p
		JOIN users u ON u.id = p.created_by_id
		WHERE p.business_id = ?`)
	args := []any{principal.BusinessID.Bytes()}

	if scope == services.ScopeOwn {
		sql.WriteString(` AND p.created_by_id = ?`)
		args = append(args, principal.UserID.Bytes())
	}
	sql.WriteString(` ORDER BY p.date DESC, p.created_at DESC`)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ListProductsQueryResponse, 0)
	for rows.Next() {
		var (
			resp          ListProductsQueryResponse
			id, createdBy uuid.UUID
			paymentMethod string
		)

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&resp.ProductName,
			&resp.Date,
			&resp.Amount,
			&paymentMethod,
			&createdBy,
			&resp.CreatedByName,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if resp.CreatedByID, err = kernel.UUIDFromGoogle(createdBy); err != nil {
			return nil, err
		}
		resp.PaymentMethod = product.PaymentMethod(paymentMethod)
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
