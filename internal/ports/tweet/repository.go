package tweet

import (
	"chirper/internal/core/tweet"
	userPort "chirper/internal/ports/user"
)

// TweetRepository is the outbound port for storing and loading tweets.
type TweetRepository interface {
	Create(tweet *tweet.Tweet) (*tweet.Tweet, error)
	FindByID(id string) (*tweet.Tweet, error)
	FindByUserID(userID string, offset, limit int64) ([]*tweet.Tweet, error)
	CountByUserID(userID string) (int64, error)
	Delete(id string) error
}

type TweetDTO struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	UserID    string            `json:"user_id"`
	User      *userPort.UserDTO `json:"user,omitempty"`
	CreatedAt string            `json:"created_at"`
}
