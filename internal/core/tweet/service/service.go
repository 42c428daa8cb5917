package tweetapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chirper/internal/config"
	"chirper/internal/core/fanoutqueue"
	tweetEntity "chirper/internal/core/tweet"
	fanoutPort "chirper/internal/ports/fanoutqueue"
	followPort "chirper/internal/ports/follow"
	timelinePort "chirper/internal/ports/timeline"
	tweetPort "chirper/internal/ports/tweet"
	userPort "chirper/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// MaxContentLength is the classic tweet limit.
const MaxContentLength = 280

// TweetService owns the tweet lifecycle. Creating a tweet also seeds the
// author's own timeline ZSET and enqueues a fanout record for the worker.
type TweetService struct {
	TweetRepository    tweetPort.TweetRepository
	FanoutRepository   fanoutPort.FanoutRepository
	FanoutRedis        fanoutPort.FanoutRedis
	FollowRepository   followPort.FollowRepository
	TimelineRepository timelinePort.TimelineRepository
}

func NewTweetService(
	tweetRepo tweetPort.TweetRepository,
	fanoutRepo fanoutPort.FanoutRepository,
	fanoutRedis fanoutPort.FanoutRedis,
	followRepo followPort.FollowRepository,
	timelineRepo timelinePort.TimelineRepository,
) *TweetService {
	return &TweetService{
		TweetRepository:    tweetRepo,
		FanoutRepository:   fanoutRepo,
		FanoutRedis:        fanoutRedis,
		FollowRepository:   followRepo,
		TimelineRepository: timelineRepo,
	}
}

// CreateTweet validates and stores a tweet, then queues it for fanout.
func (s *TweetService) CreateTweet(ctx context.Context, content, userID string) (*tweetPort.TweetDTO, error) {
	if content == "" {
		return nil, errors.New("content must not be empty")
	}
	if len([]rune(content)) > MaxContentLength {
		return nil, fmt.Errorf("content exceeds %d characters", MaxContentLength)
	}

	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}

	t := &tweetEntity.Tweet{
		ID:      uuid.Must(uuid.NewV4()),
		Content: content,
		UserID:  uid,
	}

	created, err := s.TweetRepository.Create(t)
	if err != nil {
		return nil, fmt.Errorf("failed to create tweet: %w", err)
	}

	// Queue the tweet for the fanout worker; a failure here must not fail
	// the write itself.
	fq := &fanoutqueue.FanoutQueue{
		ID:      uuid.Must(uuid.NewV4()),
		TweetID: created.ID,
		UserID:  created.UserID,
		Status:  "pending",
	}
	if _, err := s.FanoutRepository.Create(ctx, fq); err != nil {
		config.Logger.Warn("could not enqueue fanout record", zap.Error(err))
	}

	// The author sees their own tweet immediately.
	if err := s.FanoutRedis.PushTweetToFollowers(ctx, created.ID.String(), []string{created.UserID.String()}); err != nil {
		config.Logger.Warn("could not push tweet to author timeline", zap.Error(err))
	}

	return toTweetDTO(created), nil
}

// DeleteTweet removes a tweet; only the author may delete it. Likes and
// retweets disappear through the schema's cascade rule.
func (s *TweetService) DeleteTweet(ctx context.Context, id, viewerID string) error {
	t, err := s.TweetRepository.FindByID(id)
	if err != nil {
		return errors.New("tweet not found")
	}

	if t.UserID.String() != viewerID {
		return errors.New("only the author can delete a tweet")
	}

	return s.TweetRepository.Delete(id)
}

// GetTweetByID returns a single tweet with its author.
func (s *TweetService) GetTweetByID(ctx context.Context, id string) (*tweetPort.TweetDTO, error) {
	t, err := s.TweetRepository.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toTweetDTO(t), nil
}

// GetTweetsByUserID returns a user's tweets, newest first.
func (s *TweetService) GetTweetsByUserID(ctx context.Context, userID string, offset, limit int64) ([]*tweetPort.TweetDTO, error) {
	tweets, err := s.TweetRepository.FindByUserID(userID, offset, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]*tweetPort.TweetDTO, 0, len(tweets))
	for _, t := range tweets {
		dtos = append(dtos, toTweetDTO(t))
	}
	return dtos, nil
}

// CountTweetsByUserID returns the number of tweets a user has posted.
func (s *TweetService) CountTweetsByUserID(ctx context.Context, userID string) (int64, error) {
	return s.TweetRepository.CountByUserID(userID)
}

func toTweetDTO(t *tweetEntity.Tweet) *tweetPort.TweetDTO {
	dto := &tweetPort.TweetDTO{
		ID:        t.ID.String(),
		Content:   t.Content,
		UserID:    t.UserID.String(),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if t.User.ID != uuid.Nil {
		dto.User = &userPort.UserDTO{
			ID:       t.User.ID.String(),
			Name:     t.User.Name,
			Bio:      t.User.Bio,
			Username: t.User.Username,
			Email:    t.User.Email,
		}
	}
	return dto
}
