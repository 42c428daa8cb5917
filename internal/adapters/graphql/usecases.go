package graphql

import (
	"context"

	tweetPort "chirper/internal/ports/tweet"
	userPort "chirper/internal/ports/user"
)

// Inbound ports the resolvers are wired against. They match the core services
// the same way the httpapi use-case interfaces do.

type UserUseCase interface {
	RegisterUser(ctx context.Context, name, username, email, password string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	GetUserByID(ctx context.Context, id string) (*userPort.UserDTO, error)
	GetUserByUsername(ctx context.Context, username string) (*userPort.UserDTO, error)
	UpdateProfile(ctx context.Context, id, name, bio string) (*userPort.UserDTO, error)
}

type TweetUseCase interface {
	CreateTweet(ctx context.Context, content, userID string) (*tweetPort.TweetDTO, error)
	DeleteTweet(ctx context.Context, id, viewerID string) error
	GetTweetByID(ctx context.Context, id string) (*tweetPort.TweetDTO, error)
	GetTweetsByUserID(ctx context.Context, userID string, offset, limit int64) ([]*tweetPort.TweetDTO, error)
	CountTweetsByUserID(ctx context.Context, userID string) (int64, error)
}

type FollowUseCase interface {
	FollowUser(ctx context.Context, followerID, followeeID string) error
	UnfollowUser(ctx context.Context, followerID, followeeID string) error
	GetFollowersByUserID(ctx context.Context, userID string) ([]*userPort.UserDTO, error)
	GetFollowingByUserID(ctx context.Context, userID string) ([]*userPort.UserDTO, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
}

type LikeUseCase interface {
	LikeTweet(ctx context.Context, userID, tweetID string) error
	UnlikeTweet(ctx context.Context, userID, tweetID string) error
	CountByTweetID(ctx context.Context, tweetID string) (int64, error)
	HasLiked(ctx context.Context, userID, tweetID string) (bool, error)
}

type RetweetUseCase interface {
	RetweetTweet(ctx context.Context, userID, tweetID string) error
	UnretweetTweet(ctx context.Context, userID, tweetID string) error
	CountByTweetID(ctx context.Context, tweetID string) (int64, error)
	HasRetweeted(ctx context.Context, userID, tweetID string) (bool, error)
}

type TimelineUseCase interface {
	GetTimelineByUserID(ctx context.Context, userID string, start, limit int64) ([]*tweetPort.TweetDTO, error)
}

// Resolver bundles the use cases the schema resolves against.
type Resolver struct {
	Users    UserUseCase
	Tweets   TweetUseCase
	Follows  FollowUseCase
	Likes    LikeUseCase
	Retweets RetweetUseCase
	Timeline TimelineUseCase
}
