package models

import "gorm.io/gorm"

// AccessLog records login outcomes for auditing
type AccessLog struct {
	gorm.Model
	UserID    *uint  `gorm:"index" json:"user_id,omitempty"`
	IPAddress string `gorm:"size:45" json:"ip_address"`
	UserAgent string `gorm:"size:255" json:"user_agent"`
	Success   bool   `gorm:"not null" json:"success"`
	Message   string `gorm:"size:255" json:"message,omitempty"`
}
