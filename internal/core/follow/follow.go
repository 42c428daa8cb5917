package follow

import (
	"time"

	"chirper/internal/core/user"

	"github.com/gofrs/uuid"
)

// Follow is a directed edge: FollowerID follows UserID. The composite unique
// index rejects duplicate edges at the schema level.
type Follow struct {
	ID         uuid.UUID  `gorm:"primary_key;type:char(36)"`
	UserID     uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:uniq_user_follower"`
	User       user.User  `gorm:"foreignkey:UserID"`
	FollowerID uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:uniq_user_follower"`
	Follower   user.User  `gorm:"foreignkey:FollowerID"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	DeletedAt  *time.Time `gorm:"index"`
}
