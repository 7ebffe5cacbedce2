package user_test

import (
	"testing"

	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/core/domain/model/user"
	"salesreport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, address string) *kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail(address)
	require.NoError(t, err)
	return &email
}

func TestNewEmployee(t *testing.T) {
	t.Run("creates approver with email", func(t *testing.T) {
		email := mustEmail(t, "anna.kowalska@example.com")

		u, err := user.NewEmployee(kernel.NewUUID(), "Anna", "Kowalska", email, true)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, user.RoleEmployee, u.Role())
		assert.True(t, u.IsApprover())
		assert.False(t, u.IsBot())
		assert.Equal(t, "Anna Kowalska", u.FullName())

		address, ok := u.Email()
		require.True(t, ok)
		assert.Equal(t, "anna.kowalska@example.com", address.String())
	})

	t.Run("allows employee without email", func(t *testing.T) {
		u, err := user.NewEmployee(kernel.NewUUID(), "Jan", "Nowak", nil, true)

		require.NoError(t, err)
		_, ok := u.Email()
		assert.False(t, ok)
		assert.True(t, u.IsApprover(), "missing email must not affect the approver flag")
	})

	t.Run("rejects empty first name", func(t *testing.T) {
		_, err := user.NewEmployee(kernel.NewUUID(), "  ", "Nowak", nil, false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero-value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := user.NewEmployee(id, "Anna", "Kowalska", nil, false)

		require.Error(t, err)
	})
}

func TestNewBot(t *testing.T) {
	t.Run("creates the sender identity", func(t *testing.T) {
		email := mustEmail(t, "reports@example.com")

		u, err := user.NewBot(kernel.NewUUID(), "Report", "Bot", email)

		require.NoError(t, err)
		assert.True(t, u.IsBot())
		assert.False(t, u.IsApprover(), "a bot is never an approver")
	})

	t.Run("allows single-word name", func(t *testing.T) {
		u, err := user.NewBot(kernel.NewUUID(), "Reporter", "", nil)

		require.NoError(t, err)
		assert.Equal(t, "Reporter", u.FullName())
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("restores a persisted employee", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.RestoreUser(id, user.RoleEmployee, "Anna", "Kowalska", nil, true)

		require.NoError(t, err)
		assert.True(t, u.ID().IsEqual(id))
		assert.True(t, u.IsApprover())
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		_, err := user.RestoreUser(kernel.NewUUID(), user.RoleUnknown, "Anna", "Kowalska", nil, false)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects bot flagged as approver", func(t *testing.T) {
		_, err := user.RestoreUser(kernel.NewUUID(), user.RoleBot, "Report", "Bot", nil, true)

		require.Error(t, err)
		assert.Equal(t, user.ErrBotCannotBeApprover, err)
	})
}

func TestRole(t *testing.T) {
	t.Run("valid roles pass validation", func(t *testing.T) {
		require.NoError(t, user.RoleEmployee.Validate())
		require.NoError(t, user.RoleBot.Validate())
	})

	t.Run("unknown role fails validation", func(t *testing.T) {
		require.Error(t, user.RoleUnknown.Validate())
		require.Error(t, user.Role(42).Validate())
	})

	t.Run("string representations", func(t *testing.T) {
		assert.Equal(t, "Employee", user.RoleEmployee.String())
		assert.Equal(t, "Bot", user.RoleBot.String())
		assert.Equal(t, "Unknown", user.Role(42).String())
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("nil user is invalid", func(t *testing.T) {
		var u *user.User

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, user.ErrUserIsNotConstructed, err)
	})
}
