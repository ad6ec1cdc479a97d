package models

import "gorm.io/gorm"

// Notification is an in-app message raised by workflow events such as a
// withdrawal review or a support reply
type Notification struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Title   string `gorm:"size:255;not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`
}
