package models

import (
	"time"

	"gorm.io/gorm"
)

// RememberToken is a long-lived credential letting a client re-establish a
// session without a password. Rotated on every token login.
type RememberToken struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
