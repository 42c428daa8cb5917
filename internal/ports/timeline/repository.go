package timeline

import (
	"context"

	"chirper/internal/core/timeline"
	tweetPort "chirper/internal/ports/tweet"
)

// TimelineRepository serves the feed. GetTimelineByUserID reads the Redis ZSET
// written by the fanout worker; GetTimelineFromDB composes the feed directly
// from the follow graph and is used when the ZSET has nothing for the user.
type TimelineRepository interface {
	GetTimelineByUserID(ctx context.Context, userID string, start, limit int64) ([]*tweetPort.TweetDTO, error)
	GetTimelineFromDB(ctx context.Context, userID string, offset, limit int64) ([]*tweetPort.TweetDTO, error)
	Add(ctx context.Context, tl *timeline.Timeline) error
	AddBatch(ctx context.Context, timelines []*timeline.Timeline) error
}
