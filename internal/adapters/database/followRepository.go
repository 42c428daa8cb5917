package database

import (
	"context"

	"chirper/internal/config"
	"chirper/internal/core/follow"
)

// FollowRepositoryDatabase implements the FollowRepository port over GORM.
type FollowRepositoryDatabase struct{}

func NewFollowRepositoryDatabase() *FollowRepositoryDatabase {
	return &FollowRepositoryDatabase{}
}

func (repo *FollowRepositoryDatabase) FollowUser(ctx context.Context, edge *follow.Follow) (*follow.Follow, error) {
	if err := config.DB.Create(edge).Error; err != nil {
		return nil, err
	}
	return edge, nil
}

func (repo *FollowRepositoryDatabase) UnfollowUser(ctx context.Context, followerID, followeeID string) error {
	return config.DB.Where("follower_id = ? AND user_id = ?", followerID, followeeID).Delete(&follow.Follow{}).Error
}

func (repo *FollowRepositoryDatabase) GetFollowersByUserID(ctx context.Context, userID string) ([]*follow.Follow, error) {
	var followers []*follow.Follow
	if err := config.DB.Preload("Follower").Where("user_id = ?", userID).Find(&followers).Error; err != nil {
		return nil, err
	}
	return followers, nil
}

func (repo *FollowRepositoryDatabase) GetFollowingByUserID(ctx context.Context, followerID string) ([]*follow.Follow, error) {
	var following []*follow.Follow
	if err := config.DB.Preload("User").Where("follower_id = ?", followerID).Find(&following).Error; err != nil {
		return nil, err
	}
	return following, nil
}

func (repo *FollowRepositoryDatabase) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	if err := config.DB.Model(&follow.Follow{}).
		Where("follower_id = ? AND user_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FollowRepositoryDatabase) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := config.DB.Model(&follow.Follow{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *FollowRepositoryDatabase) CountFollowing(ctx context.Context, followerID string) (int64, error) {
	var count int64
	if err := config.DB.Model(&follow.Follow{}).Where("follower_id = ?", followerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
