package commands

import (
	"errors"
	"strings"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/user"
	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var ErrCreateWorkerCommandIsNotConstructed = errors.New(
	"CreateWorkerCommand must be created via NewCreateWorkerCommand constructor",
)

// CreateWorkerCommand represents an Admin adding a Worker to their business.
type CreateWorkerCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	name      string
	email     string
	password  string

	guard guard.ConstructorGuard
}

func NewCreateWorkerCommand(principal identity.Principal, name, email, password string) (CreateWorkerCommand, error) {
	cmd := CreateWorkerCommand{guard: guard.NewConstructorGuard()}

	var nameErr error
	if name = strings.TrimSpace(name); name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	normalised, emailErr := user.NormalizeEmail(email)

	if err := errors.Join(
		principal.Validate(),
		nameErr,
		emailErr,
		setPassword(&cmd.password, password),
	); err != nil {
		return CreateWorkerCommand{}, err
	}

	cmd.principal = principal
	cmd.name = name
	cmd.email = normalised
	return cmd, nil
}

func (c CreateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkerCommandIsNotConstructed)
}

func (c CreateWorkerCommand) Principal() identity.Principal { return c.principal }
func (c CreateWorkerCommand) Name() string                  { return c.name }
func (c CreateWorkerCommand) Email() string                 { return c.email }
func (c CreateWorkerCommand) Password() string              { return c.password }
