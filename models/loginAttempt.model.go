package models

import "gorm.io/gorm"

// LoginAttempt records one failed login. Lockout counts rows per email inside
// a sliding window; successful login deletes the rows.
type LoginAttempt struct {
	gorm.Model
	Email     string `gorm:"size:255;not null;index" json:"email"`
	IPAddress string `gorm:"size:45" json:"ip_address"`
}

func (LoginAttempt) TableName() string {
	return "login_attempts"
}
