package follow

import (
	"context"

	"chirper/internal/core/follow"
)

// FollowRepository is the outbound port for the follow graph.
type FollowRepository interface {
	FollowUser(ctx context.Context, edge *follow.Follow) (*follow.Follow, error)
	UnfollowUser(ctx context.Context, followerID, followeeID string) error
	GetFollowersByUserID(ctx context.Context, userID string) ([]*follow.Follow, error)
	GetFollowingByUserID(ctx context.Context, followerID string) ([]*follow.Follow, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, followerID string) (int64, error)
}

type FollowDTO struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	FollowerID string `json:"followerId"`
}
