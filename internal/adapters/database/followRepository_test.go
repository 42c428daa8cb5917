package database

import (
	"context"
	"testing"

	followEntity "chirper/internal/core/follow"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository(t *testing.T) {
	setupTestDB(t)
	repo := NewFollowRepositoryDatabase()
	ctx := context.Background()

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	carol := seedUser(t, "carol")

	followEdge := func(follower, followee uuid.UUID) *followEntity.Follow {
		return &followEntity.Follow{
			ID:         uuid.Must(uuid.NewV4()),
			UserID:     followee,
			FollowerID: follower,
		}
	}

	t.Run("FollowUser", func(t *testing.T) {
		_, err := repo.FollowUser(ctx, followEdge(alice.ID, bob.ID))
		require.NoError(t, err)
		_, err = repo.FollowUser(ctx, followEdge(carol.ID, bob.ID))
		require.NoError(t, err)
	})

	t.Run("DuplicateEdgeRejected", func(t *testing.T) {
		_, err := repo.FollowUser(ctx, followEdge(alice.ID, bob.ID))
		assert.Error(t, err)
	})

	t.Run("IsFollowing", func(t *testing.T) {
		ok, err := repo.IsFollowing(ctx, alice.ID.String(), bob.ID.String())
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.IsFollowing(ctx, bob.ID.String(), alice.ID.String())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("FollowersAndFollowing", func(t *testing.T) {
		followers, err := repo.GetFollowersByUserID(ctx, bob.ID.String())
		require.NoError(t, err)
		require.Len(t, followers, 2)
		// Preload brings the follower profile.
		usernames := []string{followers[0].Follower.Username, followers[1].Follower.Username}
		assert.ElementsMatch(t, []string{"alice", "carol"}, usernames)

		following, err := repo.GetFollowingByUserID(ctx, alice.ID.String())
		require.NoError(t, err)
		require.Len(t, following, 1)
		assert.Equal(t, "bob", following[0].User.Username)
	})

	t.Run("Counts", func(t *testing.T) {
		followers, err := repo.CountFollowers(ctx, bob.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(2), followers)

		following, err := repo.CountFollowing(ctx, alice.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(1), following)
	})

	t.Run("UnfollowUser", func(t *testing.T) {
		require.NoError(t, repo.UnfollowUser(ctx, alice.ID.String(), bob.ID.String()))

		ok, err := repo.IsFollowing(ctx, alice.ID.String(), bob.ID.String())
		require.NoError(t, err)
		assert.False(t, ok)

		count, err := repo.CountFollowers(ctx, bob.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
