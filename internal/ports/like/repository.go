package like

import (
	"context"

	"chirper/internal/core/like"
)

// LikeRepository is the outbound port for the likes junction table.
type LikeRepository interface {
	Create(ctx context.Context, l *like.Like) (*like.Like, error)
	Delete(ctx context.Context, userID, tweetID string) error
	Exists(ctx context.Context, userID, tweetID string) (bool, error)
	CountByTweetID(ctx context.Context, tweetID string) (int64, error)
}
