// Package identity holds the authenticated caller model shared by the
// Credential Verifier, the session codec and the Authorization Policy.
package identity

import (
	"fmt"
	"strings"

	"inventory/internal/pkg/errs"
)

// Role is the privilege level of a user inside its business.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleWorker Role = "WORKER"
)

// ParseRole accepts the wire form case-insensitively ("admin", "WORKER").
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleWorker:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// LoginPath is the login surface dedicated to the role.
func (r Role) LoginPath() string {
	return "/login/" + strings.ToLower(string(r))
}
