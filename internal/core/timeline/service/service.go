package timelineapp

import (
	"context"

	"chirper/internal/config"
	"chirper/internal/core/timeline"
	timelinePort "chirper/internal/ports/timeline"
	tweetPort "chirper/internal/ports/tweet"

	"go.uber.org/zap"
)

// TimelineService reads the feed: Redis ZSET first, relational fallback when
// the ZSET is empty or unreachable.
type TimelineService struct {
	TimelineRepository timelinePort.TimelineRepository
}

func NewTimelineService(timelineRepo timelinePort.TimelineRepository) *TimelineService {
	return &TimelineService{
		TimelineRepository: timelineRepo,
	}
}

// GetTimelineByUserID returns the user's feed: own tweets plus tweets from
// followed users, newest first.
func (s *TimelineService) GetTimelineByUserID(ctx context.Context, userID string, start, limit int64) ([]*tweetPort.TweetDTO, error) {
	tweets, err := s.TimelineRepository.GetTimelineByUserID(ctx, userID, start, limit)
	if err != nil {
		config.Logger.Warn("timeline ZSET read failed, falling back to DB", zap.Error(err))
		return s.TimelineRepository.GetTimelineFromDB(ctx, userID, start, limit)
	}

	// A cold ZSET (new user, flushed Redis) still has a feed in the schema.
	if len(tweets) == 0 {
		return s.TimelineRepository.GetTimelineFromDB(ctx, userID, start, limit)
	}

	return tweets, nil
}

func (s *TimelineService) Add(ctx context.Context, tl *timeline.Timeline) error {
	return s.TimelineRepository.Add(ctx, tl)
}
