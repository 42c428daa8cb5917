package tweet

import (
	"time"

	"chirper/internal/core/user"

	"github.com/gofrs/uuid"
)

type Tweet struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36)"`
	Content   string     `gorm:"type:text;not null"`
	UserID    uuid.UUID  `gorm:"type:char(36);not null;index"`
	User      user.User  `gorm:"foreignkey:UserID"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
