package models

import "gorm.io/gorm"

// Ticket priorities
const (
	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"
)

// Ticket statuses, advanced in order pending -> in_progress -> resolved
const (
	TicketStatusPending    = "pending"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
)

type SupportTicket struct {
	gorm.Model
	UserID        uint   `gorm:"not null;index" json:"user_id"`
	Subject       string `gorm:"size:255;not null" json:"subject"`
	Message       string `gorm:"type:text;not null" json:"message"`
	Priority      string `gorm:"type:varchar(10);default:'medium'" json:"priority"`
	Status        string `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	AdminResponse string `gorm:"type:text" json:"admin_response,omitempty"`
	AdminID       *uint  `json:"admin_id,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
