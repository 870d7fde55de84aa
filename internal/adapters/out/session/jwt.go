// Package session issues and verifies HS256 session tokens.
package session

import (
	"errors"
	"fmt"
	"time"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// MinSecretLength is the shortest accepted signing secret in bytes.
	MinSecretLength = 32

	issuer = "inventory"
)

var ErrSecretTooShort = fmt.Errorf("session secret must be at least %d bytes", MinSecretLength)

type claims struct {
	jwt.RegisteredClaims
	BusinessID string `json:"bid"`
	Role       string `json:"role"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
}

// JWTCodec implements ports.SessionCodec.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*JWTCodec)

// WithClock replaces time.Now for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(c *JWTCodec) {
		c.now = now
	}
}

// NewJWTCodec fails when the secret is shorter than MinSecretLength, so a
// missing SESSION_SECRET stops the process instead of accepting any token.
func NewJWTCodec(secret string, ttl time.Duration, opts ...Option) (*JWTCodec, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("session ttl", ttl, time.Second, 365*24*time.Hour)
	}

	c := &JWTCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *JWTCodec) Issue(p identity.Principal) (string, time.Time, error) {
	if err := p.Validate(); err != nil {
		return "", time.Time{}, err
	}

	issuedAt := c.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(c.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		BusinessID: p.BusinessID.String(),
		Role:       p.Role.String(),
		Name:       p.Name,
		Email:      p.Email,
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

func (c *JWTCodec) Parse(token string) (identity.Principal, error) {
	if token == "" {
		return identity.Principal{}, errs.NewUnauthenticatedError("missing session token", "authentication required")
	}

	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		reason := "invalid session token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "session token expired"
		}
		return identity.Principal{}, errs.NewUnauthenticatedErrorWithCause(reason, "invalid session", err)
	}

	return toPrincipal(parsed)
}

func toPrincipal(c claims) (identity.Principal, error) {
	userID, userErr := kernel.UUIDFromString(c.Subject)
	businessID, businessErr := kernel.UUIDFromString(c.BusinessID)
	role, roleErr := identity.ParseRole(c.Role)
	if err := errors.Join(userErr, businessErr, roleErr); err != nil {
		return identity.Principal{}, errs.NewUnauthenticatedErrorWithCause("malformed session claims", "invalid session", err)
	}

	p := identity.Principal{
		UserID:     userID,
		BusinessID: businessID,
		Name:       c.Name,
		Email:      c.Email,
		Role:       role,
	}
	return p, p.Validate()
}
