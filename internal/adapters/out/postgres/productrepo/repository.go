package productrepo

import (
	"context"

	"inventory/internal/adapters/out/postgres/dberr"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Map(err, "product", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND business_id = ?", dto.ID, dto.BusinessID).
		Updates(map[string]any{
			"customer_name":  dto.CustomerName,
			"product_name":   dto.ProductName,
			"date":           dto.Date,
			"amount":         dto.Amount,
			"payment_method": dto.PaymentMethod,
		})
	if result.Error != nil {
		return dberr.Map(result.Error, "product", aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, businessID, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND business_id = ?", id.Bytes(), businessID.Bytes()).Error
	if err != nil {
		return nil, dberr.Map(err, "product", id)
	}

	return toDomain(dto)
}

func (r *GormProductRepository) Delete(ctx context.Context, businessID, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id.Bytes(), businessID.Bytes()).
		Delete(&ProductDTO{})
	if result.Error != nil {
		return dberr.Map(result.Error, "product", id)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id)
	}
	return nil
}
