package like

import (
	"time"

	"chirper/internal/core/tweet"
	"chirper/internal/core/user"

	"github.com/gofrs/uuid"
)

// Like is a junction row between a user and a tweet. A user may like a given
// tweet at most once; deleting the tweet cascades through the foreign key.
type Like struct {
	ID        uuid.UUID   `gorm:"primary_key;type:char(36)"`
	UserID    uuid.UUID   `gorm:"type:char(36);not null;uniqueIndex:uniq_like_user_tweet"`
	User      user.User   `gorm:"foreignkey:UserID"`
	TweetID   uuid.UUID   `gorm:"type:char(36);not null;uniqueIndex:uniq_like_user_tweet"`
	Tweet     tweet.Tweet `gorm:"foreignkey:TweetID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"autoCreateTime"`
}
