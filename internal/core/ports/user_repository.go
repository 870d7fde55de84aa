package ports

import (
	"context"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for admins and workers.
type UserRepository interface {
	// Add persists a new user. A second user with the same email fails with
	// errs.AlreadyExistsError, enforced by the storage uniqueness constraint.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user of the given business. Users of other businesses are
	// reported as errs.ObjectNotFoundError.
	Get(ctx context.Context, businessID, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by normalised email across all businesses.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// ExistsByEmail reports whether any user already owns the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
