package retweet

import (
	"context"

	"chirper/internal/core/retweet"
)

// RetweetRepository is the outbound port for the retweets junction table.
type RetweetRepository interface {
	Create(ctx context.Context, rt *retweet.Retweet) (*retweet.Retweet, error)
	Delete(ctx context.Context, userID, tweetID string) error
	Exists(ctx context.Context, userID, tweetID string) (bool, error)
	CountByTweetID(ctx context.Context, tweetID string) (int64, error)
}
