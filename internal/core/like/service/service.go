package likeapp

import (
	"context"
	"errors"

	likeEntity "chirper/internal/core/like"
	likePort "chirper/internal/ports/like"
	tweetPort "chirper/internal/ports/tweet"

	"github.com/gofrs/uuid"
)

// LikeService enforces the one-like-per-user-per-tweet rule on top of the
// schema's unique index.
type LikeService struct {
	LikeRepository  likePort.LikeRepository
	TweetRepository tweetPort.TweetRepository
}

func NewLikeService(likeRepo likePort.LikeRepository, tweetRepo tweetPort.TweetRepository) *LikeService {
	return &LikeService{
		LikeRepository:  likeRepo,
		TweetRepository: tweetRepo,
	}
}

func (s *LikeService) LikeTweet(ctx context.Context, userID, tweetID string) error {
	if _, err := s.TweetRepository.FindByID(tweetID); err != nil {
		return errors.New("tweet not found")
	}

	already, err := s.LikeRepository.Exists(ctx, userID, tweetID)
	if err != nil {
		return err
	}
	if already {
		return errors.New("already liked this tweet")
	}

	l := &likeEntity.Like{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  uuid.FromStringOrNil(userID),
		TweetID: uuid.FromStringOrNil(tweetID),
	}

	_, err = s.LikeRepository.Create(ctx, l)
	return err
}

func (s *LikeService) UnlikeTweet(ctx context.Context, userID, tweetID string) error {
	liked, err := s.LikeRepository.Exists(ctx, userID, tweetID)
	if err != nil {
		return err
	}
	if !liked {
		return errors.New("tweet is not liked")
	}

	return s.LikeRepository.Delete(ctx, userID, tweetID)
}

func (s *LikeService) CountByTweetID(ctx context.Context, tweetID string) (int64, error) {
	return s.LikeRepository.CountByTweetID(ctx, tweetID)
}

func (s *LikeService) HasLiked(ctx context.Context, userID, tweetID string) (bool, error) {
	return s.LikeRepository.Exists(ctx, userID, tweetID)
}
