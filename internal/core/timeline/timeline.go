package timeline

import (
	"time"

	"chirper/internal/core/tweet"
	"chirper/internal/core/user"

	"github.com/gofrs/uuid"
)

// Timeline is the materialized feed: one row per (reader, tweet), written by
// the fanout worker.
type Timeline struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36)"`
	UserID    uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:uniq_user_tweet"`
	TweetID   uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:uniq_user_tweet"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	DeletedAt *time.Time `gorm:"index"`

	User  user.User   `gorm:"foreignkey:UserID"`
	Tweet tweet.Tweet `gorm:"foreignkey:TweetID;constraint:OnDelete:CASCADE"`
}
