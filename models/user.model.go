package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// User account statuses
const (
	UserStatusPending   = "pending"
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

type User struct {
	gorm.Model
	Name            string     `gorm:"not null" json:"name"`
	Username        string     `gorm:"uniqueIndex;not null" json:"username"`
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	Password        string     `gorm:"not null" json:"-"`
	Role            string     `gorm:"type:varchar(20);default:'client'" json:"role"`
	Status          string     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Balance         float64    `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	ActivationToken string     `gorm:"type:varchar(64)" json:"-"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
}
