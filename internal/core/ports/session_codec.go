package ports

import (
	"time"

	"inventory/internal/core/domain/model/identity"
)

// SessionCodec turns session claims into an opaque tamper-evident token and back.
type SessionCodec interface {
	// Issue signs the principal and returns the token with its expiry.
	Issue(p identity.Principal) (token string, expiresAt time.Time, err error)

	// Parse verifies the token and returns its claims. Any decode, signature or
	// expiry failure is an errs.UnauthenticatedError.
	Parse(token string) (identity.Principal, error)
}
