package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/ports"
	"inventory/internal/pkg/errs"
)

// Credential failures. The first three are reported to the caller with the
// same public message so that a login form cannot be used to enumerate
// accounts; the sentinel stays in the error chain for logs and tests.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrBusinessMismatch = errors.New("business name does not match")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrRoleMismatch     = errors.New("role does not match login surface")
)

const invalidCredentials = "invalid credentials"

// dummyPassword is hashed once and compared against when the email is unknown,
// so both branches pay for one hash comparison.
const dummyPassword = "inventory-dummy-password"

// Session is the outcome of a successful login.
type Session struct {
	Principal identity.Principal
	Token     string
	ExpiresAt time.Time
}

// AuthenticateCommandHandler is the credential verifier: it checks email,
// business name, password and login surface, then issues a signed session.
type AuthenticateCommandHandler struct {
	uowFactory TenantUoWFactory
	hasher     ports.PasswordHasher
	sessions   ports.SessionCodec
	dummyHash  func() (string, error)
}

func NewAuthenticateCommandHandler(
	uowFactory TenantUoWFactory,
	hasher ports.PasswordHasher,
	sessions ports.SessionCodec,
) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		sessions:   sessions,
		dummyHash: sync.OnceValues(func() (string, error) {
			return hasher.Hash(dummyPassword)
		}),
	}
}

func (h AuthenticateCommandHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (Session, error) {
	if err := cmd.Validate(); err != nil {
		return Session{}, err
	}

	principal, err := h.verify(ctx, cmd)
	if err != nil {
		return Session{}, err
	}

	token, expiresAt, err := h.sessions.Issue(principal)
	if err != nil {
		return Session{}, err
	}

	return Session{Principal: principal, Token: token, ExpiresAt: expiresAt}, nil
}

func (h AuthenticateCommandHandler) verify(ctx context.Context, cmd AuthenticateCommand) (identity.Principal, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return identity.Principal{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		if dummy, hashErr := h.dummyHash(); hashErr == nil {
			_ = h.hasher.Compare(dummy, cmd.Password())
		}
		return identity.Principal{}, credentialsError(ErrUserNotFound)
	}
	if err != nil {
		return identity.Principal{}, err
	}

	b, err := uow.BusinessRepository().Get(ctx, u.BusinessID())
	if err != nil {
		return identity.Principal{}, err
	}
	if !b.MatchesName(cmd.BusinessName()) {
		return identity.Principal{}, credentialsError(ErrBusinessMismatch)
	}

	err = h.hasher.Compare(u.PasswordHash(), cmd.Password())
	if errors.Is(err, ports.ErrPasswordMismatch) {
		return identity.Principal{}, credentialsError(ErrInvalidPassword)
	}
	if err != nil {
		return identity.Principal{}, err
	}

	if expected := cmd.ExpectedRole(); expected != "" && expected != u.Role() {
		return identity.Principal{}, errs.NewUnauthenticatedErrorWithCause(
			fmt.Sprintf("%s %s used the %s login", u.Role(), u.ID(), expected),
			fmt.Sprintf("wrong login page for this account, please sign in at %s", u.Role().LoginPath()),
			ErrRoleMismatch,
		)
	}

	return u.Principal(), nil
}

func credentialsError(cause error) error {
	return errs.NewUnauthenticatedErrorWithCause(cause.Error(), invalidCredentials, cause)
}
