package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	t.Run("creates user with sequential IDs", func(t *testing.T) {
		first := testUser("first@example.com")
		require.NoError(t, repo.Create(first))
		assert.Equal(t, 1, first.ID)

		second := testUser("second@example.com")
		require.NoError(t, repo.Create(second))
		assert.Equal(t, 2, second.ID)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		dup := testUser("first@example.com")
		err := repo.Create(dup)
		assert.ErrorIs(t, err, ErrDuplicateEmail)

		// The failed insert must not have consumed a record.
		_, err = repo.GetByID(3)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("email matching is exact", func(t *testing.T) {
		upper := testUser("FIRST@example.com")
		assert.NoError(t, repo.Create(upper), "case-variant email is a distinct address")
	})
}

func TestUserRepositoryGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	user := testUser("ada@example.com")
	require.NoError(t, repo.Create(user))

	t.Run("by ID", func(t *testing.T) {
		got, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", got.Email)
	})

	t.Run("by email", func(t *testing.T) {
		got, err := repo.GetByEmail("ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Name, got.Name)
	})

	t.Run("unknown ID", func(t *testing.T) {
		_, err := repo.GetByID(42)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.GetByEmail("nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
