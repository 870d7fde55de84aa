// Package businessrepo persists tenants.
package businessrepo

import (
	"time"

	"inventory/internal/core/domain/model/business"
	"inventory/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type BusinessDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(120);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (BusinessDTO) TableName() string {
	return "businesses"
}

func fromDomain(b *business.Business) BusinessDTO {
	return BusinessDTO{
		ID:   b.ID().Bytes(),
		Name: b.Name(),
	}
}

func toDomain(dto BusinessDTO) (*business.Business, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return business.RestoreBusiness(id, dto.Name)
}
