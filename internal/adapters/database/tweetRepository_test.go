package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetRepository(t *testing.T) {
	setupTestDB(t)
	repo := NewTweetRepositoryDatabase()

	bob := seedUser(t, "bob")
	base := time.Now().Add(-time.Hour)

	first := seedTweet(t, bob, "first", base)
	second := seedTweet(t, bob, "second", base.Add(time.Minute))
	third := seedTweet(t, bob, "third", base.Add(2*time.Minute))

	t.Run("FindByID", func(t *testing.T) {
		tw, err := repo.FindByID(first.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "first", tw.Content)
		// Preload must bring the author along.
		assert.Equal(t, "bob", tw.User.Username)
	})

	t.Run("FindByUserID_NewestFirst", func(t *testing.T) {
		tweets, err := repo.FindByUserID(bob.ID.String(), 0, 10)
		require.NoError(t, err)
		require.Len(t, tweets, 3)
		assert.Equal(t, third.ID, tweets[0].ID)
		assert.Equal(t, second.ID, tweets[1].ID)
		assert.Equal(t, first.ID, tweets[2].ID)
	})

	t.Run("FindByUserID_Pagination", func(t *testing.T) {
		tweets, err := repo.FindByUserID(bob.ID.String(), 1, 1)
		require.NoError(t, err)
		require.Len(t, tweets, 1)
		assert.Equal(t, second.ID, tweets[0].ID)
	})

	t.Run("CountByUserID", func(t *testing.T) {
		count, err := repo.CountByUserID(bob.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(third.ID.String()))

		_, err := repo.FindByID(third.ID.String())
		assert.Error(t, err)

		count, err := repo.CountByUserID(bob.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
