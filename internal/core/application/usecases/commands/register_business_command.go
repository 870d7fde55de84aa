package commands

import (
	"errors"
	"strings"

	"inventory/internal/core/domain/model/user"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrRegisterBusinessCommandIsNotConstructed = errors.New(
	"RegisterBusinessCommand must be created via NewRegisterBusinessCommand constructor",
)

// RegisterBusinessCommand represents a request to open a new tenant together
// with its first Admin.
//
// Example:
//
//	cmd, err := NewRegisterBusinessCommand("Acme", "Alice", "alice@x.com", "pw1")
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
//	businessID, err := handler.Handle(ctx, cmd)
type RegisterBusinessCommand struct { //nolint:recvcheck //using for validation
	businessName string
	adminName    string
	email        string
	password     string

	guard guard.ConstructorGuard
}

func NewRegisterBusinessCommand(businessName, adminName, email, password string) (RegisterBusinessCommand, error) {
	cmd := RegisterBusinessCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setBusinessName(businessName),
		cmd.setAdminName(adminName),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterBusinessCommand{}, err
	}

	return cmd, nil
}

func (c RegisterBusinessCommand) Validate() error {
	return c.guard.Validate(ErrRegisterBusinessCommandIsNotConstructed)
}

func (c RegisterBusinessCommand) BusinessName() string { return c.businessName }
func (c RegisterBusinessCommand) AdminName() string    { return c.adminName }
func (c RegisterBusinessCommand) Email() string        { return c.email }
func (c RegisterBusinessCommand) Password() string     { return c.password }

func (c *RegisterBusinessCommand) setBusinessName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	c.businessName = name
	return nil
}

func (c *RegisterBusinessCommand) setAdminName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.adminName = name
	return nil
}

func (c *RegisterBusinessCommand) setEmail(email string) error {
	normalised, err := user.NormalizeEmail(email)
	if err != nil {
		return err
	}
	c.email = normalised
	return nil
}

func (c *RegisterBusinessCommand) setPassword(password string) error {
	return setPassword(&c.password, password)
}

const (
	minPasswordLength = 3
	maxPasswordLength = 72
)

func setPassword(dst *string, password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if n := len(password); n < minPasswordLength || n > maxPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", n, minPasswordLength, maxPasswordLength)
	}
	*dst = password
	return nil
}
