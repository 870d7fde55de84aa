package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Worker transitions are written with conditional updates so that concurrent
// requests cannot overwrite each other: a claim only succeeds while worker_id
// is NULL, and a status change only succeeds while the stored worker and
// status still match what the caller read.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists every field of an existing order (admin override).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order of the given business. Orders of other businesses
	// are reported as errs.ObjectNotFoundError.
	Get(ctx context.Context, businessID, id kernel.UUID) (*order.Order, error)

	// ClaimUnassigned writes the aggregate's worker and status only if the
	// stored order is still unassigned. Returns errs.ForbiddenError wrapping
	// order.ErrOrderAlreadyClaimed when another worker got there first.
	ClaimUnassigned(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus writes the aggregate's status only if the stored order is
	// still assigned to the aggregate's worker and still in status from.
	// Returns errs.ForbiddenError when the stored row changed in between.
	UpdateStatus(ctx context.Context, aggregate *order.Order, from order.Status) error
}
