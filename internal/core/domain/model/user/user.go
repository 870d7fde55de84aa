// Package user models the people acting inside a business: its Admins and Workers.
//
// A user carries a bcrypt password hash, never the plaintext. Email addresses are
// globally unique and stored normalised (trimmed, lower-cased) so that the unique
// index in storage and the login lookup agree on identity.
package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

const maxNameLength = 120

type User struct {
	id           kernel.UUID
	businessID   kernel.UUID
	name         string
	email        string
	passwordHash string
	role         identity.Role
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a user with a fresh identifier. passwordHash must already be
// the output of the password hasher.
func NewUser(
	businessID kernel.UUID,
	name, email, passwordHash string,
	role identity.Role,
) (*User, error) {
	return RestoreUser(kernel.NewUUID(), businessID, name, email, passwordHash, role, time.Now().UTC())
}

// RestoreUser rebuilds a user loaded from storage.
func RestoreUser(
	id, businessID kernel.UUID,
	name, email, passwordHash string,
	role identity.Role,
	createdAt time.Time,
) (*User, error) {
	u := &User{guard: guard.NewConstructorGuard(), createdAt: createdAt}

	if err := errors.Join(
		u.setID(id),
		u.setBusinessID(businessID),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	return u, nil
}

// NormalizeEmail trims and lower-cases an address after checking its syntax.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid address", email))
	}
	return email, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID              { return u.id }
func (u *User) BusinessID() kernel.UUID      { return u.businessID }
func (u *User) Name() string                 { return u.name }
func (u *User) Email() string                { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() identity.Role          { return u.role }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) IsWorker() bool               { return u.role == identity.RoleWorker }
func (u *User) BelongsTo(b kernel.UUID) bool { return u.businessID.IsEqual(b) }

// Principal returns the session claims describing this user.
func (u *User) Principal() identity.Principal {
	return identity.Principal{
		UserID:     u.id,
		BusinessID: u.businessID,
		Name:       u.name,
		Email:      u.email,
		Role:       u.role,
	}
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setBusinessID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("businessId", err)
	}
	u.businessID = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, maxNameLength)
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	u.email = normalized
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
