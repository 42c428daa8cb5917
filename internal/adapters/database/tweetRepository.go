package database

import (
	"chirper/internal/config"
	"chirper/internal/core/tweet"
)

// TweetRepositoryDatabase implements the TweetRepository port over GORM.
type TweetRepositoryDatabase struct{}

func NewTweetRepositoryDatabase() *TweetRepositoryDatabase {
	return &TweetRepositoryDatabase{}
}

func (repo *TweetRepositoryDatabase) Create(tweet *tweet.Tweet) (*tweet.Tweet, error) {
	if err := config.DB.Create(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

func (repo *TweetRepositoryDatabase) FindByID(id string) (*tweet.Tweet, error) {
	var t tweet.Tweet
	if err := config.DB.Preload("User").Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (repo *TweetRepositoryDatabase) FindByUserID(userID string, offset, limit int64) ([]*tweet.Tweet, error) {
	var tweets []*tweet.Tweet
	if err := config.DB.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

func (repo *TweetRepositoryDatabase) CountByUserID(userID string) (int64, error) {
	var count int64
	if err := config.DB.Model(&tweet.Tweet{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *TweetRepositoryDatabase) Delete(id string) error {
	// Likes and retweets go with the tweet via ON DELETE CASCADE.
	return config.DB.Where("id = ?", id).Delete(&tweet.Tweet{}).Error
}
