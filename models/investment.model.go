package models

import (
	"time"

	"gorm.io/gorm"
)

// Investment statuses
const (
	InvestmentStatusActive    = "active"
	InvestmentStatusCompleted = "completed"
	InvestmentStatusCancelled = "cancelled"
)

// Investment is a client's purchase of a package. ReturnAmount is computed
// once at creation as amount * return_rate / 100 and never recalculated.
type Investment struct {
	gorm.Model
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	PackageID      uint      `gorm:"not null;index" json:"package_id"`
	Amount         float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	ReturnAmount   float64   `gorm:"type:decimal(15,2);not null" json:"return_amount"`
	NextReturnDate time.Time `gorm:"not null" json:"next_return_date"`
	Status         string    `gorm:"type:varchar(20);default:'active';index" json:"status"`

	User    User              `gorm:"foreignKey:UserID" json:"-"`
	Package InvestmentPackage `gorm:"foreignKey:PackageID" json:"-"`
}
