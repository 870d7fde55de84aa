// Package userrepo persists admins and workers. Email uniqueness is enforced
// by the ux_users_email index.
package userrepo

import (
	"time"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Email        string    `gorm:"type:varchar(320);not null;uniqueIndex:ux_users_email"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		BusinessID:   u.BusinessID().Bytes(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	businessID, err := kernel.UUIDFromGoogle(dto.BusinessID)
	if err != nil {
		return nil, err
	}
	role, err := identity.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, businessID, dto.Name, dto.Email, dto.PasswordHash, role, dto.CreatedAt)
}
