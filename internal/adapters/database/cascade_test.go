package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"chirper/internal/config"
	"chirper/internal/core/fanoutqueue"
	followEntity "chirper/internal/core/follow"
	likeEntity "chirper/internal/core/like"
	retweetEntity "chirper/internal/core/retweet"
	timelineEntity "chirper/internal/core/timeline"
	tweetEntity "chirper/internal/core/tweet"
	userEntity "chirper/internal/core/user"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Like setupTestDB, but with foreign keys enforced so the ON DELETE rules
// behave the way MySQL enforces them in production.
func setupFKTestDB(t *testing.T) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userEntity.User{},
		&tweetEntity.Tweet{},
		&followEntity.Follow{},
		&likeEntity.Like{},
		&retweetEntity.Retweet{},
		&timelineEntity.Timeline{},
		&fanoutqueue.FanoutQueue{},
	))

	config.DB = db
	config.Logger = zap.NewNop()

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
}

func TestTweetDelete_CascadesWithForeignKeysOn(t *testing.T) {
	setupFKTestDB(t)
	ctx := context.Background()

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	tw := seedTweet(t, alice, "short lived", time.Now())

	require.NoError(t, config.DB.Create(&likeEntity.Like{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  bob.ID,
		TweetID: tw.ID,
	}).Error)
	require.NoError(t, config.DB.Create(&retweetEntity.Retweet{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  bob.ID,
		TweetID: tw.ID,
	}).Error)
	require.NoError(t, config.DB.Create(&timelineEntity.Timeline{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  bob.ID,
		TweetID: tw.ID,
	}).Error)

	// Every create leaves a fanout record behind, done or not.
	fq := &fanoutqueue.FanoutQueue{
		ID:      uuid.Must(uuid.NewV4()),
		TweetID: tw.ID,
		UserID:  alice.ID,
		Status:  "pending",
	}
	_, err := NewFanoutRepositoryDatabase().Create(ctx, fq)
	require.NoError(t, err)
	require.NoError(t, NewFanoutRepositoryDatabase().MarkDone(ctx, fq.ID))

	require.NoError(t, NewTweetRepositoryDatabase().Delete(tw.ID.String()))

	for name, model := range map[string]interface{}{
		"likes":        &likeEntity.Like{},
		"retweets":     &retweetEntity.Retweet{},
		"timelines":    &timelineEntity.Timeline{},
		"fanout_queue": &fanoutqueue.FanoutQueue{},
	} {
		var count int64
		require.NoError(t, config.DB.Model(model).Where("tweet_id = ?", tw.ID).Count(&count).Error)
		assert.Zero(t, count, "leftover rows in %s", name)
	}

	// The author survives their tweet.
	var stored userEntity.User
	require.NoError(t, config.DB.First(&stored, "id = ?", alice.ID).Error)
}
