package database

import (
	"context"

	"chirper/internal/config"
	"chirper/internal/core/retweet"
)

// RetweetRepositoryDatabase implements the RetweetRepository port over GORM.
type RetweetRepositoryDatabase struct{}

func NewRetweetRepositoryDatabase() *RetweetRepositoryDatabase {
	return &RetweetRepositoryDatabase{}
}

func (repo *RetweetRepositoryDatabase) Create(ctx context.Context, rt *retweet.Retweet) (*retweet.Retweet, error) {
	if err := config.DB.Create(rt).Error; err != nil {
		return nil, err
	}
	return rt, nil
}

func (repo *RetweetRepositoryDatabase) Delete(ctx context.Context, userID, tweetID string) error {
	return config.DB.Where("user_id = ? AND tweet_id = ?", userID, tweetID).Delete(&retweet.Retweet{}).Error
}

func (repo *RetweetRepositoryDatabase) Exists(ctx context.Context, userID, tweetID string) (bool, error) {
	var count int64
	if err := config.DB.Model(&retweet.Retweet{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *RetweetRepositoryDatabase) CountByTweetID(ctx context.Context, tweetID string) (int64, error) {
	var count int64
	if err := config.DB.Model(&retweet.Retweet{}).Where("tweet_id = ?", tweetID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
