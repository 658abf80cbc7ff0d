package models

import (
	"time"
)

// MaxTweetLength is the maximum number of characters in a tweet.
const MaxTweetLength = 280

// Tweet represents a tweet posted by a user. The owning user is set at
// creation time and never changes.
type Tweet struct {
	ID      uint            `gorm:"primaryKey" json:"id"`
	Content string          `gorm:"size:280;not null" json:"content"`
	UserID  uint            `gorm:"not null;index" json:"user_id"`
	User    User            `gorm:"foreignKey:UserID" json:"user"`
	Status  LifecycleStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	// LikesCount is not persisted; computed at query time
	LikesCount int64 `gorm:"-" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this tweet (computed)
	Liked     bool      `gorm:"-" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActive reports whether the tweet is in the active lifecycle state.
// Deactivated tweets are logically absent for mutation.
func (t *Tweet) IsActive() bool {
	return t.Status == StatusActive
}
