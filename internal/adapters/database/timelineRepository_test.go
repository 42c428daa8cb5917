package database

import (
	"context"
	"testing"
	"time"

	followEntity "chirper/internal/core/follow"
	timelineEntity "chirper/internal/core/timeline"

	"chirper/internal/config"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineRepository_GetTimelineFromDB(t *testing.T) {
	setupTestDB(t)
	repo := NewTimelineRepositoryDatabase()
	ctx := context.Background()

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	carol := seedUser(t, "carol")

	// alice follows bob, nobody follows carol.
	require.NoError(t, config.DB.Create(&followEntity.Follow{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     bob.ID,
		FollowerID: alice.ID,
	}).Error)

	base := time.Now().Add(-time.Hour)
	own := seedTweet(t, alice, "alice says hi", base)
	followed := seedTweet(t, bob, "bob says hi", base.Add(time.Minute))
	stranger := seedTweet(t, carol, "carol says hi", base.Add(2*time.Minute))

	t.Run("UnionOfOwnAndFollowed", func(t *testing.T) {
		feed, err := repo.GetTimelineFromDB(ctx, alice.ID.String(), 0, 10)
		require.NoError(t, err)
		require.Len(t, feed, 2)

		// Newest first: bob's tweet, then alice's own.
		assert.Equal(t, followed.ID.String(), feed[0].ID)
		assert.Equal(t, own.ID.String(), feed[1].ID)

		for _, dto := range feed {
			assert.NotEqual(t, stranger.ID.String(), dto.ID)
			require.NotNil(t, dto.User)
		}
		assert.Equal(t, "bob", feed[0].User.Username)
	})

	t.Run("Pagination", func(t *testing.T) {
		feed, err := repo.GetTimelineFromDB(ctx, alice.ID.String(), 1, 10)
		require.NoError(t, err)
		require.Len(t, feed, 1)
		assert.Equal(t, own.ID.String(), feed[0].ID)
	})

	t.Run("NoFollowsMeansOwnTweetsOnly", func(t *testing.T) {
		feed, err := repo.GetTimelineFromDB(ctx, carol.ID.String(), 0, 10)
		require.NoError(t, err)
		require.Len(t, feed, 1)
		assert.Equal(t, stranger.ID.String(), feed[0].ID)
	})

	// limit 0 must not become "everything" on either read path: the ZSET stop
	// index would wrap to -1 and a negative GORM limit cancels the clause.
	t.Run("NonPositiveLimitIsEmpty", func(t *testing.T) {
		for _, limit := range []int64{0, -1} {
			feed, err := repo.GetTimelineFromDB(ctx, alice.ID.String(), 0, limit)
			require.NoError(t, err)
			assert.Empty(t, feed)

			feed, err = repo.GetTimelineByUserID(ctx, alice.ID.String(), 0, limit)
			require.NoError(t, err)
			assert.Empty(t, feed)
		}
	})
}

func TestTimelineRepository_AddBatch(t *testing.T) {
	setupTestDB(t)
	repo := NewTimelineRepositoryDatabase()
	ctx := context.Background()

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	tw := seedTweet(t, bob, "fanned out", time.Now())

	rows := []*timelineEntity.Timeline{
		{UserID: alice.ID, TweetID: tw.ID},
	}
	require.NoError(t, repo.AddBatch(ctx, rows))

	// IDs and timestamps get filled in.
	assert.NotEqual(t, uuid.Nil, rows[0].ID)

	var count int64
	require.NoError(t, config.DB.Model(&timelineEntity.Timeline{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The (user, tweet) pair is unique.
	err := repo.Add(ctx, &timelineEntity.Timeline{UserID: alice.ID, TweetID: tw.ID})
	assert.Error(t, err)

	// Empty batches are a no-op.
	require.NoError(t, repo.AddBatch(ctx, nil))
}
