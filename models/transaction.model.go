package models

import "gorm.io/gorm"

// Transaction types
const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeInvestment = "investment"
	TransactionTypeReturn     = "return"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

// Transaction is a ledger entry for any balance-affecting event. Deposits and
// withdrawals start pending and are confirmed separately; investment and
// return entries are inserted already completed.
type Transaction struct {
	gorm.Model
	UserID          uint    `gorm:"not null;index" json:"user_id"`
	Type            string  `gorm:"type:varchar(20);not null;index" json:"type"`
	Amount          float64 `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status          string  `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	TransactionCode string  `gorm:"type:varchar(32);uniqueIndex;not null" json:"transaction_code"`
	Method          string  `gorm:"type:varchar(30)" json:"method,omitempty"`
	WalletAddress   string  `gorm:"type:varchar(255)" json:"wallet_address,omitempty"`
	Description     string  `gorm:"type:text" json:"description"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
