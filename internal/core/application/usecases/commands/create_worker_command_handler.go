package commands

import (
	"context"
	"errors"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/user"
	"inventory/internal/core/domain/services"
	"inventory/internal/core/ports"
	"inventory/internal/pkg/errs"
)

// CreateWorkerCommandHandler adds a Worker to the caller's business.
// Only Admins pass the authorization policy.
type CreateWorkerCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	policy     services.AuthorizationPolicy
}

func NewCreateWorkerCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	policy services.AuthorizationPolicy,
) CreateWorkerCommandHandler {
	return CreateWorkerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		policy:     policy,
	}
}

func (h CreateWorkerCommandHandler) Handle(ctx context.Context, cmd CreateWorkerCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	principal := cmd.Principal()
	if _, err := h.policy.Authorize(principal, services.ResourceWorker, services.ActionCreate); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	worker, err := user.NewUser(principal.BusinessID, cmd.Name(), cmd.Email(), passwordHash, identity.RoleWorker)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	exists, err := userRepo.ExistsByEmail(ctx, worker.Email())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, emailInUse(worker.Email())
	}

	if err = userRepo.Add(ctx, worker); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return nil, emailInUse(worker.Email())
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return worker, nil
}
