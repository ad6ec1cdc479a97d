package services

import (
	"errors"
	"fmt"
	"invest/models"
	"invest/utils"
	"time"

	"gorm.io/gorm"
)

// The ledger functions are the only writers of users.balance. Every mutation
// is a single conditional UPDATE checked by affected-row count, inside one
// database transaction with the matching ledger insert. Two concurrent
// requests can both pass any earlier read; the UPDATE is what decides.

// debitBalance subtracts amount from the user's balance only when enough
// funds remain. Returns ErrInsufficientBalance when no row matched.
func debitBalance(tx *gorm.DB, userID uint, amount float64) error {
	res := tx.Model(&models.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

// creditBalance adds amount to the user's balance
func creditBalance(tx *gorm.DB, userID uint, amount float64) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// PurchaseInvestment buys a package for the user: debits the balance, creates
// the investment row and records a completed ledger entry, all in one
// transaction. The return is fixed at purchase time as amount * rate / 100.
func PurchaseInvestment(db *gorm.DB, userID, packageID uint, amount float64) (*models.Investment, error) {
	var pkg models.InvestmentPackage
	if err := db.Where("id = ? AND status = ?", packageID, models.PackageStatusActive).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageInactive
		}
		return nil, err
	}

	if amount < pkg.MinAmount || amount > pkg.MaxAmount {
		return nil, ErrAmountOutOfRange
	}

	investment := models.Investment{
		UserID:         userID,
		PackageID:      pkg.ID,
		Amount:         amount,
		ReturnAmount:   amount * pkg.ReturnRate / 100,
		NextReturnDate: time.Now().AddDate(0, 0, pkg.PeriodDays),
		Status:         models.InvestmentStatusActive,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := debitBalance(tx, userID, amount); err != nil {
			return err
		}
		if err := tx.Create(&investment).Error; err != nil {
			return err
		}
		entry := models.Transaction{
			UserID:          userID,
			Type:            models.TransactionTypeInvestment,
			Amount:          amount,
			Status:          models.TransactionStatusCompleted,
			TransactionCode: utils.GenerateTransactionCode(utils.CodePrefixInvestment),
			Description:     fmt.Sprintf("Investment in package %s", pkg.Name),
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &investment, nil
}

// RequestDeposit records a pending deposit. The balance is credited only when
// the payment is confirmed by an admin.
func RequestDeposit(db *gorm.DB, userID uint, amount float64, method string, minimum float64) (*models.Transaction, error) {
	if amount < minimum {
		return nil, ErrBelowMinimum
	}
	entry := models.Transaction{
		UserID:          userID,
		Type:            models.TransactionTypeDeposit,
		Amount:          amount,
		Status:          models.TransactionStatusPending,
		TransactionCode: utils.GenerateTransactionCode(utils.CodePrefixDeposit),
		Method:          method,
		Description:     "Deposit via " + method,
	}
	if err := db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ConfirmDeposit completes a pending deposit and credits the balance
func ConfirmDeposit(db *gorm.DB, depositID uint) (*models.Transaction, error) {
	var entry models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND type = ?", depositID, models.TransactionTypeDeposit).First(&entry).Error; err != nil {
			return err
		}
		// Flip pending -> completed conditionally so a second confirmation
		// of the same deposit matches zero rows
		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", entry.ID, models.TransactionStatusPending).
			Update("status", models.TransactionStatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPending
		}
		entry.Status = models.TransactionStatusCompleted
		return creditBalance(tx, entry.UserID, entry.Amount)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotPending
		}
		return nil, err
	}
	return &entry, nil
}

// RequestWithdrawal records a pending withdrawal. Only one pending withdrawal
// may exist per user, the amount must meet the minimum and may not exceed the
// current balance. The balance stays untouched until an admin approves.
func RequestWithdrawal(db *gorm.DB, userID uint, amount float64, method, walletAddress string, minimum float64) (*models.Transaction, error) {
	var pending int64
	if err := db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ? AND status = ?", userID, models.TransactionTypeWithdrawal, models.TransactionStatusPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, ErrWithdrawalPending
	}

	if amount < minimum {
		return nil, ErrBelowMinimum
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if amount > user.Balance {
		return nil, ErrInsufficientBalance
	}

	entry := models.Transaction{
		UserID:          userID,
		Type:            models.TransactionTypeWithdrawal,
		Amount:          amount,
		Status:          models.TransactionStatusPending,
		TransactionCode: utils.GenerateTransactionCode(utils.CodePrefixWithdrawal),
		Method:          method,
		WalletAddress:   walletAddress,
		Description:     "Withdrawal request via " + method,
	}
	if err := db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Withdrawal review actions
const (
	ReviewApprove = "approve"
	ReviewReject  = "reject"
)

// ReviewWithdrawal approves or rejects a pending withdrawal. Approval debits
// the stored amount, re-validating the balance at approval time; rejection
// leaves the balance untouched. The pending check is part of the status
// UPDATE, so a concurrent double review settles the row exactly once.
func ReviewWithdrawal(db *gorm.DB, withdrawalID uint, action, notes string) (*models.Transaction, error) {
	if action != ReviewApprove && action != ReviewReject {
		return nil, ErrInvalidStatus
	}

	var entry models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND type = ?", withdrawalID, models.TransactionTypeWithdrawal).First(&entry).Error; err != nil {
			return err
		}

		newStatus := models.TransactionStatusCompleted
		note := " | Notes: " + notes
		if action == ReviewReject {
			newStatus = models.TransactionStatusCancelled
			note = " | Rejection reason: " + notes
		}

		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", entry.ID, models.TransactionStatusPending).
			Updates(map[string]interface{}{
				"status":      newStatus,
				"description": gorm.Expr("description || ?", note),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPending
		}
		entry.Status = newStatus
		entry.Description += note

		if action == ReviewApprove {
			return debitBalance(tx, entry.UserID, entry.Amount)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotPending
		}
		return nil, err
	}
	return &entry, nil
}

// ProcessReturns settles matured investments: credits the fixed return,
// writes the return ledger entry and marks the investment completed. Returns
// the number of investments settled. Run daily by the cron scheduler.
func ProcessReturns(db *gorm.DB, now time.Time) (int, error) {
	var due []models.Investment
	if err := db.Where("status = ? AND next_return_date <= ?", models.InvestmentStatusActive, now).
		Find(&due).Error; err != nil {
		return 0, err
	}

	settled := 0
	for _, inv := range due {
		inv := inv
		err := db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.Investment{}).
				Where("id = ? AND status = ?", inv.ID, models.InvestmentStatusActive).
				Update("status", models.InvestmentStatusCompleted)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotPending
			}
			entry := models.Transaction{
				UserID:          inv.UserID,
				Type:            models.TransactionTypeReturn,
				Amount:          inv.ReturnAmount,
				Status:          models.TransactionStatusCompleted,
				TransactionCode: utils.GenerateTransactionCode(utils.CodePrefixReturn),
				Description:     fmt.Sprintf("Return on investment #%d", inv.ID),
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			return creditBalance(tx, inv.UserID, inv.ReturnAmount)
		})
		if err != nil {
			if errors.Is(err, ErrNotPending) {
				continue
			}
			return settled, err
		}
		settled++
	}
	return settled, nil
}

// TransactionSummary aggregates completed amounts per type for one user
type TransactionSummary struct {
	TotalDeposits    float64 `json:"total_deposits"`
	TotalWithdrawals float64 `json:"total_withdrawals"`
	TotalInvestments float64 `json:"total_investments"`
	TotalReturns     float64 `json:"total_returns"`
}

// SummarizeTransactions computes the dashboard sums for a user
func SummarizeTransactions(db *gorm.DB, userID uint) (*TransactionSummary, error) {
	var summary TransactionSummary
	err := db.Model(&models.Transaction{}).
		Select(`
			COALESCE(SUM(CASE WHEN type = 'deposit' AND status = 'completed' THEN amount ELSE 0 END), 0) AS total_deposits,
			COALESCE(SUM(CASE WHEN type = 'withdrawal' AND status = 'completed' THEN amount ELSE 0 END), 0) AS total_withdrawals,
			COALESCE(SUM(CASE WHEN type = 'investment' AND status = 'completed' THEN amount ELSE 0 END), 0) AS total_investments,
			COALESCE(SUM(CASE WHEN type = 'return' AND status = 'completed' THEN amount ELSE 0 END), 0) AS total_returns`).
		Where("user_id = ?", userID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// TransactionFilter narrows ledger listings; zero values are ignored
type TransactionFilter struct {
	UserID    uint
	Type      string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// ListTransactions returns a filtered, paginated slice of ledger entries plus
// the total matching count
func ListTransactions(db *gorm.DB, f TransactionFilter) ([]models.Transaction, int64, error) {
	query := db.Model(&models.Transaction{})
	if f.UserID != 0 {
		query = query.Where("user_id = ?", f.UserID)
	}
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.StartDate != nil {
		query = query.Where("created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		query = query.Where("created_at <= ?", *f.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	limit := f.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var entries []models.Transaction
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
