package commands

import (
	"context"
	"errors"

	"inventory/internal/core/domain/model/business"
	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/user"
	"inventory/internal/core/ports"
	"inventory/internal/pkg/errs"
)

// ErrEmailInUse is the cause attached when a registration or worker creation
// targets an email that already belongs to a user.
var ErrEmailInUse = errors.New("email is already in use")

// RegisterBusinessCommandHandler creates a Business and its first Admin as one
// atomic unit: if the Admin cannot be stored the Business is rolled back too.
//
// Example:
//
//	handler := NewRegisterBusinessCommandHandler(uowFactory, hasher)
//	businessID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrEmailInUse) {
//	    // ask for another email
//	}
type RegisterBusinessCommandHandler struct {
	uowFactory TenantUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterBusinessCommandHandler(
	uowFactory TenantUoWFactory,
	hasher ports.PasswordHasher,
) RegisterBusinessCommandHandler {
	return RegisterBusinessCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle registers the business and returns its identifier.
// The password is hashed before the transaction opens; the plaintext never
// reaches a repository.
func (h RegisterBusinessCommandHandler) Handle(ctx context.Context, cmd RegisterBusinessCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return kernel.UUID{}, err
	}

	b, err := business.NewBusiness(cmd.BusinessName())
	if err != nil {
		return kernel.UUID{}, err
	}

	admin, err := user.NewUser(b.ID(), cmd.AdminName(), cmd.Email(), passwordHash, identity.RoleAdmin)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	exists, err := userRepo.ExistsByEmail(ctx, admin.Email())
	if err != nil {
		return kernel.UUID{}, err
	}
	if exists {
		return kernel.UUID{}, emailInUse(admin.Email())
	}

	if err = uow.BusinessRepository().Add(ctx, b); err != nil {
		return kernel.UUID{}, err
	}

	if err = userRepo.Add(ctx, admin); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return kernel.UUID{}, emailInUse(admin.Email())
		}
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return b.ID(), nil
}

func emailInUse(email string) error {
	return errs.NewAlreadyExistsErrorWithCause("email", email, ErrEmailInUse)
}
