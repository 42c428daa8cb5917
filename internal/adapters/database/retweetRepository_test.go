package database

import (
	"context"
	"testing"
	"time"

	retweetEntity "chirper/internal/core/retweet"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetweetRepository(t *testing.T) {
	setupTestDB(t)
	repo := NewRetweetRepositoryDatabase()
	ctx := context.Background()

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	tw := seedTweet(t, bob, "retweet me", time.Now())

	t.Run("CreateAndCount", func(t *testing.T) {
		_, err := repo.Create(ctx, &retweetEntity.Retweet{
			ID:      uuid.Must(uuid.NewV4()),
			UserID:  alice.ID,
			TweetID: tw.ID,
		})
		require.NoError(t, err)

		count, err := repo.CountByTweetID(ctx, tw.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("DuplicateRetweetRejected", func(t *testing.T) {
		_, err := repo.Create(ctx, &retweetEntity.Retweet{
			ID:      uuid.Must(uuid.NewV4()),
			UserID:  alice.ID,
			TweetID: tw.ID,
		})
		assert.Error(t, err)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, alice.ID.String(), tw.ID.String()))

		ok, err := repo.Exists(ctx, alice.ID.String(), tw.ID.String())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
