package commands

import (
	"errors"
	"strings"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/user"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand carries the login form: who, for which business, with
// which password, and on which login surface (expected role). An empty
// expectedRole accepts either role.
type AuthenticateCommand struct { //nolint:recvcheck //using for validation
	email        string
	password     string
	businessName string
	expectedRole identity.Role

	guard guard.ConstructorGuard
}

func NewAuthenticateCommand(email, password, businessName string, expectedRole identity.Role) (AuthenticateCommand, error) {
	cmd := AuthenticateCommand{guard: guard.NewConstructorGuard()}

	var problems []error
	normalised, err := user.NormalizeEmail(email)
	if err != nil {
		problems = append(problems, err)
	}
	if password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	businessName = strings.TrimSpace(businessName)
	if businessName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("businessName"))
	}
	if expectedRole != "" {
		problems = append(problems, expectedRole.Validate())
	}
	if err = errors.Join(problems...); err != nil {
		return AuthenticateCommand{}, err
	}

	cmd.email = normalised
	cmd.password = password
	cmd.businessName = businessName
	cmd.expectedRole = expectedRole
	return cmd, nil
}

func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

func (c AuthenticateCommand) Email() string               { return c.email }
func (c AuthenticateCommand) Password() string            { return c.password }
func (c AuthenticateCommand) BusinessName() string        { return c.businessName }
func (c AuthenticateCommand) ExpectedRole() identity.Role { return c.expectedRole }
