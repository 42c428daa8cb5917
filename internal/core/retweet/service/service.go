package retweetapp

import (
	"context"
	"errors"

	retweetEntity "chirper/internal/core/retweet"
	retweetPort "chirper/internal/ports/retweet"
	tweetPort "chirper/internal/ports/tweet"

	"github.com/gofrs/uuid"
)

// RetweetService mirrors LikeService for the retweets junction table. A user
// cannot retweet their own tweet.
type RetweetService struct {
	RetweetRepository retweetPort.RetweetRepository
	TweetRepository   tweetPort.TweetRepository
}

func NewRetweetService(retweetRepo retweetPort.RetweetRepository, tweetRepo tweetPort.TweetRepository) *RetweetService {
	return &RetweetService{
		RetweetRepository: retweetRepo,
		TweetRepository:   tweetRepo,
	}
}

func (s *RetweetService) RetweetTweet(ctx context.Context, userID, tweetID string) error {
	t, err := s.TweetRepository.FindByID(tweetID)
	if err != nil {
		return errors.New("tweet not found")
	}
	if t.UserID.String() == userID {
		return errors.New("cannot retweet your own tweet")
	}

	already, err := s.RetweetRepository.Exists(ctx, userID, tweetID)
	if err != nil {
		return err
	}
	if already {
		return errors.New("already retweeted this tweet")
	}

	rt := &retweetEntity.Retweet{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  uuid.FromStringOrNil(userID),
		TweetID: uuid.FromStringOrNil(tweetID),
	}

	_, err = s.RetweetRepository.Create(ctx, rt)
	return err
}

func (s *RetweetService) UnretweetTweet(ctx context.Context, userID, tweetID string) error {
	retweeted, err := s.RetweetRepository.Exists(ctx, userID, tweetID)
	if err != nil {
		return err
	}
	if !retweeted {
		return errors.New("tweet is not retweeted")
	}

	return s.RetweetRepository.Delete(ctx, userID, tweetID)
}

func (s *RetweetService) CountByTweetID(ctx context.Context, tweetID string) (int64, error) {
	return s.RetweetRepository.CountByTweetID(ctx, tweetID)
}

func (s *RetweetService) HasRetweeted(ctx context.Context, userID, tweetID string) (bool, error) {
	return s.RetweetRepository.Exists(ctx, userID, tweetID)
}
