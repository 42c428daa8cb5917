package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chirper/internal/config"
	followEntity "chirper/internal/core/follow"
	timelineEntity "chirper/internal/core/timeline"
	tweetEntity "chirper/internal/core/tweet"
	tweetPort "chirper/internal/ports/tweet"
	userPort "chirper/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type TimelineRepositoryDatabase struct{}

func NewTimelineRepositoryDatabase() *TimelineRepositoryDatabase {
	return &TimelineRepositoryDatabase{}
}

// Add inserts a single timeline row.
func (repo *TimelineRepositoryDatabase) Add(ctx context.Context, tl *timelineEntity.Timeline) error {
	if tl.ID == uuid.Nil {
		tl.ID = uuid.Must(uuid.NewV4())
	}
	if tl.CreatedAt.IsZero() {
		tl.CreatedAt = time.Now()
	}

	return config.DB.Create(tl).Error
}

// AddBatch inserts timeline rows for a whole fanout batch at once.
func (repo *TimelineRepositoryDatabase) AddBatch(ctx context.Context, timelines []*timelineEntity.Timeline) error {
	if len(timelines) == 0 {
		return nil
	}

	for i, tl := range timelines {
		if tl == nil {
			return fmt.Errorf("timeline[%d] is nil", i)
		}
		if tl.ID == uuid.Nil {
			tl.ID = uuid.Must(uuid.NewV4())
		}
		if tl.UserID == uuid.Nil || tl.TweetID == uuid.Nil {
			return fmt.Errorf("timeline[%d] has nil UserID or TweetID", i)
		}
		if tl.CreatedAt.IsZero() {
			tl.CreatedAt = time.Now()
		}
	}

	return config.DB.CreateInBatches(&timelines, len(timelines)).Error
}

// GetTimelineByUserID reads tweet IDs from the user's Redis ZSET and hydrates
// each row (with its author) from the database.
func (repo *TimelineRepositoryDatabase) GetTimelineByUserID(ctx context.Context, userID string, start, limit int64) ([]*tweetPort.TweetDTO, error) {
	// A non-positive limit would make the ZSET stop index wrap around to a
	// tail-range read.
	if limit <= 0 {
		return []*tweetPort.TweetDTO{}, nil
	}
	if config.RedisClient == nil {
		return nil, errors.New("redis client not initialized")
	}

	key := "timeline:" + userID

	tweetIDs, err := config.RedisClient.ZRevRange(ctx, key, start, start+limit-1).Result()
	if err != nil {
		return nil, err
	}

	tweets := make([]*tweetPort.TweetDTO, 0, len(tweetIDs))

	for _, tid := range tweetIDs {
		var t tweetEntity.Tweet
		if err := config.DB.Preload("User").First(&t, "id = ?", tid).Error; err != nil {
			// Deleted tweets stay in the ZSET; skip them on read.
			config.Logger.Warn("timeline tweet not found", zap.String("tweetID", tid))
			continue
		}

		tweets = append(tweets, toTweetDTO(&t))
	}

	return tweets, nil
}

// GetTimelineFromDB composes the feed straight from the relational schema:
// the user's own tweets plus tweets by everyone they follow, newest first.
func (repo *TimelineRepositoryDatabase) GetTimelineFromDB(ctx context.Context, userID string, offset, limit int64) ([]*tweetPort.TweetDTO, error) {
	// A negative limit would cancel the LIMIT clause entirely.
	if limit <= 0 {
		return []*tweetPort.TweetDTO{}, nil
	}

	followed := config.DB.Model(&followEntity.Follow{}).
		Select("user_id").
		Where("follower_id = ?", userID)

	var tweets []*tweetEntity.Tweet
	if err := config.DB.Preload("User").
		Where("user_id = ? OR user_id IN (?)", userID, followed).
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&tweets).Error; err != nil {
		return nil, err
	}

	dtos := make([]*tweetPort.TweetDTO, 0, len(tweets))
	for _, t := range tweets {
		dtos = append(dtos, toTweetDTO(t))
	}
	return dtos, nil
}

func toTweetDTO(t *tweetEntity.Tweet) *tweetPort.TweetDTO {
	return &tweetPort.TweetDTO{
		ID:      t.ID.String(),
		Content: t.Content,
		UserID:  t.UserID.String(),
		User: &userPort.UserDTO{
			ID:       t.User.ID.String(),
			Name:     t.User.Name,
			Bio:      t.User.Bio,
			Username: t.User.Username,
			Email:    t.User.Email,
		},
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}
