package fanoutqueue

import (
	"time"

	"chirper/internal/core/tweet"
	"chirper/internal/core/user"

	"github.com/gofrs/uuid"
)

type FanoutQueue struct {
	ID          uuid.UUID   `gorm:"primary_key;type:char(36)"`
	TweetID     uuid.UUID   `gorm:"type:char(36);not null"`
	Tweet       tweet.Tweet `gorm:"foreignkey:TweetID;references:ID;constraint:OnDelete:CASCADE"`
	UserID      uuid.UUID   `gorm:"type:char(36);not null"`
	User        user.User   `gorm:"foreignKey:UserID;references:ID"`
	Status      string      `gorm:"type:varchar(20);not null"` // pending, done, failed
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
	ProcessedAt *time.Time  `gorm:"index"`
	DeletedAt   *time.Time  `gorm:"index"`
}
