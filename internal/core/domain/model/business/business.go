// Package business models the tenant boundary. Every user, order and product
// belongs to exactly one Business, created once at registration.
package business

import (
	"errors"
	"strings"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrBusinessIsNotConstructed = errors.New("Business must be created via NewBusiness or RestoreBusiness")

const maxNameLength = 120

type Business struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

// NewBusiness creates a tenant with a fresh identifier.
func NewBusiness(name string) (*Business, error) {
	return RestoreBusiness(kernel.NewUUID(), name)
}

// RestoreBusiness rebuilds a tenant loaded from storage.
func RestoreBusiness(id kernel.UUID, name string) (*Business, error) {
	b := &Business{guard: guard.NewConstructorGuard()}
	if err := errors.Join(b.setID(id), b.setName(name)); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Business) Validate() error {
	if b == nil {
		return ErrBusinessIsNotConstructed
	}
	return b.guard.Validate(ErrBusinessIsNotConstructed)
}

func (b *Business) ID() kernel.UUID {
	return b.id
}

func (b *Business) Name() string {
	return b.name
}

// MatchesName compares a user-supplied business name case-insensitively.
func (b *Business) MatchesName(name string) bool {
	return strings.EqualFold(b.name, strings.TrimSpace(name))
}

func (b *Business) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Business) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("businessName length", len(name), 1, maxNameLength)
	}
	b.name = name
	return nil
}
