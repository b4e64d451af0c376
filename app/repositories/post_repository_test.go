package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepositoryCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	t.Run("creates post", func(t *testing.T) {
		post := testPost("Hello World", 1)
		require.NoError(t, repo.Create(post))
		assert.Equal(t, 1, post.ID)
	})

	t.Run("rejects duplicate title", func(t *testing.T) {
		dup := testPost("Hello World", 1)
		assert.ErrorIs(t, repo.Create(dup), ErrDuplicateTitle)
	})
}

func TestPostRepositoryList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	t.Run("empty store", func(t *testing.T) {
		posts, err := repo.List()
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("creation order survives double-digit IDs", func(t *testing.T) {
		for i := 1; i <= 12; i++ {
			require.NoError(t, repo.Create(testPost(fmt.Sprintf("Post number %d", i), 1)))
		}

		posts, err := repo.List()
		require.NoError(t, err)
		require.Len(t, posts, 12)
		for i, post := range posts {
			assert.Equal(t, i+1, post.ID)
		}
	})
}

func TestPostRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := testPost("Original Title", 1)
	require.NoError(t, repo.Create(post))

	t.Run("updates fields", func(t *testing.T) {
		post.Subtitle = "revised subtitle"
		post.Body = "<p>revised body, still long enough</p>"
		require.NoError(t, repo.Update(post))

		got, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "revised subtitle", got.Subtitle)
	})

	t.Run("re-indexes changed title", func(t *testing.T) {
		post.Title = "Renamed Title"
		require.NoError(t, repo.Update(post))

		// Old title is free again, new title is taken.
		assert.NoError(t, repo.Create(testPost("Original Title", 1)))
		assert.ErrorIs(t, repo.Create(testPost("Renamed Title", 1)), ErrDuplicateTitle)
	})

	t.Run("unknown post", func(t *testing.T) {
		missing := testPost("Ghost", 1)
		missing.ID = 99
		assert.ErrorIs(t, repo.Update(missing), ErrNotFound)
	})
}

func TestPostRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := testPost("Doomed Post", 1)
	require.NoError(t, repo.Create(post))

	t.Run("deletes and frees the title", func(t *testing.T) {
		require.NoError(t, repo.Delete(post.ID))

		_, err := repo.GetByID(post.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.NoError(t, repo.Create(testPost("Doomed Post", 1)))
	})

	t.Run("unknown post", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(404), ErrNotFound)
	})
}
