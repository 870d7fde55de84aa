package identity

import (
	"errors"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
)

// Principal is the set of session claims attached to a request after a
// successful login: who the caller is, which business it acts for, and with
// which role.
type Principal struct {
	UserID     kernel.UUID
	BusinessID kernel.UUID
	Name       string
	Email      string
	Role       Role
}

// Validate ensures the identity, tenant and role claims are all present.
// Name and Email are informational only.
func (p Principal) Validate() error {
	if err := errors.Join(
		p.UserID.Validate(),
		p.BusinessID.Validate(),
		p.Role.Validate(),
	); err != nil {
		return errs.NewUnauthenticatedErrorWithCause("incomplete session claims", "invalid session", err)
	}
	return nil
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsWorker() bool {
	return p.Role == RoleWorker
}
