// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The worker's display name is not stored; read models join users instead.
type OrderDTO struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	BusinessID    uuid.UUID                   `gorm:"type:uuid;not null;index:ix_orders_business_date,priority:1"`
	CustomerName  string                      `gorm:"not null"`
	OrderName     string                      `gorm:"not null"`
	Date          time.Time                   `gorm:"type:date;not null;index:ix_orders_business_date,priority:2"`
	Location      string                      `gorm:"not null;default:''"`
	CeremonyDates datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Amount        decimal.Decimal             `gorm:"type:numeric(12,2);not null"`
	WorkerAmount  decimal.Decimal             `gorm:"type:numeric(12,2);not null"`
	WorkerID      *uuid.UUID                  `gorm:"type:uuid;index"`
	Status        int                         `gorm:"type:smallint;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func workerColumn(o *order.Order) *uuid.UUID {
	if id := o.Worker(); id != nil {
		raw := id.Bytes()
		return &raw
	}
	return nil
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()
	dates := d.CeremonyDates
	if dates == nil {
		dates = []string{}
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		BusinessID:    o.BusinessID().Bytes(),
		CustomerName:  d.CustomerName,
		OrderName:     d.OrderName,
		Date:          d.Date,
		Location:      d.Location,
		CeremonyDates: datatypes.JSONSlice[string](dates),
		Amount:        d.Amount,
		WorkerAmount:  d.WorkerAmount,
		WorkerID:      workerColumn(o),
		Status:        int(o.Status()),
	}
}

// columns lists every mutable column, so that NULL worker ids are written too.
func (dto OrderDTO) columns() map[string]any {
	return map[string]any{
		"customer_name":  dto.CustomerName,
		"order_name":     dto.OrderName,
		"date":           dto.Date,
		"location":       dto.Location,
		"ceremony_dates": dto.CeremonyDates,
		"amount":         dto.Amount,
		"worker_amount":  dto.WorkerAmount,
		"worker_id":      dto.WorkerID,
		"status":         dto.Status,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	businessID, err := kernel.UUIDFromGoogle(dto.BusinessID)
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromGoogle(*dto.WorkerID)
		if workerErr != nil {
			return nil, workerErr
		}
		workerID = &wID
	}

	return order.RestoreOrder(id, businessID, order.Details{
		CustomerName:  dto.CustomerName,
		OrderName:     dto.OrderName,
		Date:          dto.Date,
		Location:      dto.Location,
		CeremonyDates: []string(dto.CeremonyDates),
		Amount:        dto.Amount,
		WorkerAmount:  dto.WorkerAmount,
	}, order.Status(dto.Status), workerID)
}
