package ports

import "errors"

// ErrPasswordMismatch is returned by PasswordHasher.Compare for a wrong password.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordHasher is a one-way salted hash with constant-time comparison.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare returns nil on match and ErrPasswordMismatch otherwise.
	Compare(hash, plain string) error
}
