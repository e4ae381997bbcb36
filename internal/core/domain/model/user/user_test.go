package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

func Test_NewUser(t *testing.T) {
	t.Run("should create user when params are valid", func(t *testing.T) {
		u, err := NewUser("Laura Gómez", "Laura@Example.com", "$2a$10$hash", RoleCustomer)

		require.NoError(t, err)
		assert.Equal(t, "Laura Gómez", u.Name())
		assert.Equal(t, "laura@example.com", u.Email())
		assert.Equal(t, RoleCustomer, u.Role())
		assert.False(t, u.IsAdmin())
		assert.NoError(t, u.Validate())
	})

	t.Run("should report admin role", func(t *testing.T) {
		u, err := NewUser("Ops", "ops@example.com", "$2a$10$hash", RoleAdmin)

		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})

	t.Run("should return error when email is malformed", func(t *testing.T) {
		_, err := NewUser("Laura Gómez", "not-an-email", "$2a$10$hash", RoleCustomer)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when role is unknown", func(t *testing.T) {
		_, err := NewUser("Laura Gómez", "laura@example.com", "$2a$10$hash", "superuser")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error when password hash is empty", func(t *testing.T) {
		_, err := NewUser("Laura Gómez", "laura@example.com", "", RoleCustomer)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when validating zero value", func(t *testing.T) {
		var u User

		assert.ErrorIs(t, u.Validate(), ErrUserIsNotConstructed)
	})
}

func Test_RestoreUser(t *testing.T) {
	t.Run("should restore user with identifier", func(t *testing.T) {
		id, err := kernel.NewID(42)
		require.NoError(t, err)

		u, err := RestoreUser(id, "Laura Gómez", "laura@example.com", "$2a$10$hash", RoleCustomer)

		require.NoError(t, err)
		assert.Equal(t, id, u.ID())
	})
}

func Test_User_Identify(t *testing.T) {
	t.Run("should assign identifier once", func(t *testing.T) {
		u, err := NewUser("Laura Gómez", "laura@example.com", "$2a$10$hash", RoleCustomer)
		require.NoError(t, err)

		first, err := kernel.NewID(1)
		require.NoError(t, err)
		require.NoError(t, u.Identify(first))

		second, err := kernel.NewID(2)
		require.NoError(t, err)
		err = u.Identify(second)
		require.Error(t, err)
		assert.Equal(t, first, u.ID())
	})
}
