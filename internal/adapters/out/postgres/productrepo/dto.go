// Package productrepo persists recorded sales.
package productrepo

import (
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BusinessID    uuid.UUID       `gorm:"type:uuid;not null;index:ix_products_business_date,priority:1"`
	CustomerName  string          `gorm:"not null"`
	ProductName   string          `gorm:"not null"`
	Date          time.Time       `gorm:"type:date;not null;index:ix_products_business_date,priority:2"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(16);not null"`
	CreatedByID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	d := p.Details()
	return ProductDTO{
		ID:            p.ID().Bytes(),
		BusinessID:    p.BusinessID().Bytes(),
		CustomerName:  d.CustomerName,
		ProductName:   d.ProductName,
		Date:          d.Date,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod.String(),
		CreatedByID:   p.CreatedByID().Bytes(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	businessID, err := kernel.UUIDFromGoogle(dto.BusinessID)
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromGoogle(dto.CreatedByID)
	if err != nil {
		return nil, err
	}
	method, err := product.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, businessID, createdBy, product.Details{
		CustomerName:  dto.CustomerName,
		ProductName:   dto.ProductName,
		Date:          dto.Date,
		Amount:        dto.Amount,
		PaymentMethod: method,
	})
}
