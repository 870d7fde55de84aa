package orderrepo

import (
	"context"

	"inventory/internal/adapters/out/postgres/dberr"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Map(err, "order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every mutable column of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND business_id = ?", dto.ID, dto.BusinessID).
		Updates(dto.columns())
	if result.Error != nil {
		return dberr.Map(result.Error, "order", aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID within a business.
func (r *GormOrderRepository) Get(ctx context.Context, businessID, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND business_id = ?", id.Bytes(), businessID.Bytes()).Error
	if err != nil {
		return nil, dberr.Map(err, "order", id)
	}

	return toDomain(dto)
}

// ClaimUnassigned sets worker and status in one statement guarded by
// worker_id IS NULL. Zero affected rows means another claim won.
func (r *GormOrderRepository) ClaimUnassigned(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	worker := workerColumn(aggregate)
	if worker == nil {
		return errs.NewValueIsRequiredError("workerId")
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND business_id = ? AND worker_id IS NULL",
			aggregate.ID().Bytes(), aggregate.BusinessID().Bytes()).
		Updates(map[string]any{
			"worker_id": worker,
			"status":    int(aggregate.Status()),
		})
	if result.Error != nil {
		return dberr.Map(result.Error, "order", aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewForbiddenErrorWithCause("claim order", "order is already claimed", order.ErrOrderAlreadyClaimed)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatus is a compare-and-set on (worker_id, status).
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, from order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	worker := workerColumn(aggregate)
	if worker == nil {
		return errs.NewForbiddenErrorWithCause("change order status",
			"order is not assigned", order.ErrOrderNotAssignedToWorker)
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND business_id = ? AND worker_id = ? AND status = ?",
			aggregate.ID().Bytes(), aggregate.BusinessID().Bytes(), *worker, int(from)).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return dberr.Map(result.Error, "order", aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewForbiddenErrorWithCause("change order status",
			"order was changed concurrently", order.ErrStatusTransitionIsNotAllowed)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
