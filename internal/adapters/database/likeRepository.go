package database

import (
	"context"

	"chirper/internal/config"
	"chirper/internal/core/like"
)

// LikeRepositoryDatabase implements the LikeRepository port over GORM. The
// composite unique index on (user_id, tweet_id) is the real guard against
// double likes; Exists is for the friendlier error path.
type LikeRepositoryDatabase struct{}

func NewLikeRepositoryDatabase() *LikeRepositoryDatabase {
	return &LikeRepositoryDatabase{}
}

func (repo *LikeRepositoryDatabase) Create(ctx context.Context, l *like.Like) (*like.Like, error) {
	if err := config.DB.Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (repo *LikeRepositoryDatabase) Delete(ctx context.Context, userID, tweetID string) error {
	return config.DB.Where("user_id = ? AND tweet_id = ?", userID, tweetID).Delete(&like.Like{}).Error
}

func (repo *LikeRepositoryDatabase) Exists(ctx context.Context, userID, tweetID string) (bool, error) {
	var count int64
	if err := config.DB.Model(&like.Like{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *LikeRepositoryDatabase) CountByTweetID(ctx context.Context, tweetID string) (int64, error) {
	var count int64
	if err := config.DB.Model(&like.Like{}).Where("tweet_id = ?", tweetID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
