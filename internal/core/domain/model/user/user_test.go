package user_test

import (
	"testing"

	"inventory/internal/core/domain/model/identity"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/user"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	businessID := kernel.NewUUID()

	t.Run("normalises email and exposes claims", func(t *testing.T) {
		u, err := user.NewUser(businessID, " Bob ", " Bob@X.com ", "$2a$hash", identity.RoleWorker)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "Bob", u.Name())
		assert.Equal(t, "bob@x.com", u.Email())
		assert.True(t, u.IsWorker())
		assert.True(t, u.BelongsTo(businessID))
		assert.False(t, u.CreatedAt().IsZero())

		p := u.Principal()
		assert.True(t, p.UserID.IsEqual(u.ID()))
		assert.True(t, p.BusinessID.IsEqual(businessID))
		assert.Equal(t, identity.RoleWorker, p.Role)
	})

	t.Run("joins every validation error", func(t *testing.T) {
		_, err := user.NewUser(kernel.UUID{}, "", "not-an-email", "", "GUEST")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "businessId")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "passwordHash")
		assert.Contains(t, err.Error(), "role")
	})
}

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		out     string
		wantErr error
	}{
		{name: "plain", in: "alice@x.com", out: "alice@x.com"},
		{name: "mixed case", in: "Alice@X.COM", out: "alice@x.com"},
		{name: "empty", in: "  ", wantErr: errs.ErrValueIsRequired},
		{name: "display name", in: "Alice <alice@x.com>", wantErr: errs.ErrValueIsInvalid},
		{name: "no at", in: "alice", wantErr: errs.ErrValueIsInvalid},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := user.NormalizeEmail(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.out, got)
		})
	}
}
