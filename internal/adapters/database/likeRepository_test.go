package database

import (
	"context"
	"testing"
	"time"

	likeEntity "chirper/internal/core/like"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository(t *testing.T) {
	setupTestDB(t)
	repo := NewLikeRepositoryDatabase()
	ctx := context.Background()

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	tw := seedTweet(t, bob, "like me", time.Now())

	newLike := func(userID, tweetID uuid.UUID) *likeEntity.Like {
		return &likeEntity.Like{
			ID:      uuid.Must(uuid.NewV4()),
			UserID:  userID,
			TweetID: tweetID,
		}
	}

	t.Run("Create", func(t *testing.T) {
		_, err := repo.Create(ctx, newLike(alice.ID, tw.ID))
		require.NoError(t, err)
	})

	t.Run("DuplicateLikeRejected", func(t *testing.T) {
		// Same (user, tweet) pair with a fresh row ID: the composite unique
		// index must reject it.
		_, err := repo.Create(ctx, newLike(alice.ID, tw.ID))
		assert.Error(t, err)
	})

	t.Run("ExistsAndCount", func(t *testing.T) {
		ok, err := repo.Exists(ctx, alice.ID.String(), tw.ID.String())
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, bob.ID.String(), tw.ID.String())
		require.NoError(t, err)
		assert.False(t, ok)

		count, err := repo.CountByTweetID(ctx, tw.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("SecondUserCanLike", func(t *testing.T) {
		_, err := repo.Create(ctx, newLike(bob.ID, tw.ID))
		require.NoError(t, err)

		count, err := repo.CountByTweetID(ctx, tw.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, alice.ID.String(), tw.ID.String()))

		ok, err := repo.Exists(ctx, alice.ID.String(), tw.ID.String())
		require.NoError(t, err)
		assert.False(t, ok)

		count, err := repo.CountByTweetID(ctx, tw.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
