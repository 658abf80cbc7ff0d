// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account.
type User struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Email       string          `gorm:"unique;not null" json:"email"`
	Password    string          `gorm:"not null" json:"-"`
	FirstName   string          `gorm:"size:50;not null" json:"first_name"`
	LastName    string          `gorm:"size:50;not null" json:"last_name"`
	BirthDate   *time.Time      `json:"birth_date,omitempty"`
	IsSuperuser bool            `gorm:"not null;default:false" json:"is_superuser"`
	Status      LifecycleStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Tweets      []Tweet         `gorm:"foreignKey:UserID" json:"tweets,omitempty"`

	// FollowingCount and FollowersCount are not persisted; computed at query time
	FollowingCount int64 `gorm:"-" json:"following_count"`
	FollowersCount int64 `gorm:"-" json:"followers_count"`
}

// IsActive reports whether the account is in the active lifecycle state.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
