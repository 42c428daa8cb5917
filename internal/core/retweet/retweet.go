package retweet

import (
	"time"

	"chirper/internal/core/tweet"
	"chirper/internal/core/user"

	"github.com/gofrs/uuid"
)

// Retweet mirrors Like: one row per (user, tweet), cascade-deleted with the tweet.
type Retweet struct {
	ID        uuid.UUID   `gorm:"primary_key;type:char(36)"`
	UserID    uuid.UUID   `gorm:"type:char(36);not null;uniqueIndex:uniq_retweet_user_tweet"`
	User      user.User   `gorm:"foreignkey:UserID"`
	TweetID   uuid.UUID   `gorm:"type:char(36);not null;uniqueIndex:uniq_retweet_user_tweet"`
	Tweet     tweet.Tweet `gorm:"foreignkey:TweetID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"autoCreateTime"`
}
