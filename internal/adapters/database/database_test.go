package database

import (
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
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
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

func seedUser(t *testing.T, username string) *userEntity.User {
	t.Helper()

	u := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     "Test " + username,
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, config.DB.Create(u).Error)
	return u
}

func seedTweet(t *testing.T, author *userEntity.User, content string, createdAt time.Time) *tweetEntity.Tweet {
	t.Helper()

	tw := &tweetEntity.Tweet{
		ID:        uuid.Must(uuid.NewV4()),
		Content:   content,
		UserID:    author.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, config.DB.Create(tw).Error)
	return tw
}
