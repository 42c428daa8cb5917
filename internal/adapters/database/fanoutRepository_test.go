package database

import (
	"context"
	"testing"
	"time"

	"chirper/internal/config"
	"chirper/internal/core/fanoutqueue"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanoutRepository(t *testing.T) {
	setupTestDB(t)
	repo := NewFanoutRepositoryDatabase()
	ctx := context.Background()

	bob := seedUser(t, "bob")
	tw := seedTweet(t, bob, "fan me out", time.Now())

	fq := &fanoutqueue.FanoutQueue{
		ID:      uuid.Must(uuid.NewV4()),
		TweetID: tw.ID,
		UserID:  bob.ID,
		Status:  "pending",
	}

	_, err := repo.Create(ctx, fq)
	require.NoError(t, err)

	pending, err := repo.GetPendingTweets(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, tw.ID, pending[0].TweetID)

	require.NoError(t, repo.MarkDone(ctx, fq.ID))

	pending, err = repo.GetPendingTweets(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	var stored fanoutqueue.FanoutQueue
	require.NoError(t, config.DB.First(&stored, "id = ?", fq.ID).Error)
	assert.Equal(t, "done", stored.Status)
	assert.NotNil(t, stored.ProcessedAt)
}
