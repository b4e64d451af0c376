package services

import (
	"testing"

	"bramble/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceRegister(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	t.Run("registers and hashes the credential", func(t *testing.T) {
		user, err := svc.Register("Ada Lovelace", "ada@example.com", "secret123")
		require.NoError(t, err)

		assert.Equal(t, 1, user.ID)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.False(t, user.IsAdmin(), "registered users are plain members")

		found, err := repo.GetByEmail("ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.Register("Ada Again", "ada@example.com", "othersecret")
		assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
		assert.Len(t, repo.users, 1, "no second record is created")
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := svc.Register("Bad Email", "not-an-email", "secret123")
		assert.Error(t, err)
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Register("Ada Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate("ada@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", user.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("ada@example.com", "nope")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate("ghost@example.com", "secret123")
		assert.ErrorIs(t, err, ErrUnknownEmail)
	})

	t.Run("email matching is exact", func(t *testing.T) {
		_, err := svc.Authenticate("ADA@example.com", "secret123")
		assert.ErrorIs(t, err, ErrUnknownEmail)
	})
}
