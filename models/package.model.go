package models

import "gorm.io/gorm"

// Investment package statuses
const (
	PackageStatusActive   = "active"
	PackageStatusInactive = "inactive"
)

// InvestmentPackage is an admin-defined offer with fixed return and maturity period
type InvestmentPackage struct {
	gorm.Model
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	MinAmount   float64 `gorm:"type:decimal(15,2);not null" json:"min_amount"`
	MaxAmount   float64 `gorm:"type:decimal(15,2);not null" json:"max_amount"`
	ReturnRate  float64 `gorm:"type:decimal(5,2);not null" json:"return_rate"`
	PeriodDays  int     `gorm:"not null" json:"period_days"`
	Status      string  `gorm:"type:varchar(20);default:'active'" json:"status"`
}

func (InvestmentPackage) TableName() string {
	return "investment_packages"
}
