package fanout

import (
	"context"

	"chirper/internal/core/fanoutqueue"

	"github.com/gofrs/uuid"
)

type FanoutRepository interface {
	Create(ctx context.Context, fanout *fanoutqueue.FanoutQueue) (*fanoutqueue.FanoutQueue, error)
	GetPendingTweets(ctx context.Context, limit int64) ([]*fanoutqueue.FanoutQueue, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
}

type FanoutRedis interface {
	PushTweetToFollowers(ctx context.Context, tweetID string, followerIDs []string) error
}

type FanoutQueueDTO struct {
	ID      uuid.UUID
	TweetID uuid.UUID
	UserID  uuid.UUID
	Status  string // pending, done, failed
}
