package services

import (
	"invest/models"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseInvestment(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 1000)
	pkg := seedPackage(t, db, 100, 5000, 3, 3)

	investment, err := PurchaseInvestment(db, user.ID, pkg.ID, 500)
	require.NoError(t, err)

	assert.Equal(t, 500.0, investment.Amount)
	assert.Equal(t, 15.0, investment.ReturnAmount)
	assert.Equal(t, models.InvestmentStatusActive, investment.Status)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 3), investment.NextReturnDate, time.Minute)

	assert.Equal(t, 500.0, currentBalance(t, db, user.ID))

	var entry models.Transaction
	require.NoError(t, db.Where("user_id = ? AND type = ?", user.ID, models.TransactionTypeInvestment).First(&entry).Error)
	assert.Equal(t, models.TransactionStatusCompleted, entry.Status)
	assert.Equal(t, 500.0, entry.Amount)
	assert.True(t, strings.HasPrefix(entry.TransactionCode, "INV"))
}

func TestPurchaseInvestment_AmountOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 10000)
	pkg := seedPackage(t, db, 100, 5000, 3, 30)

	_, err := PurchaseInvestment(db, user.ID, pkg.ID, 50)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)

	_, err = PurchaseInvestment(db, user.ID, pkg.ID, 5001)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)

	// Bounds themselves are allowed
	_, err = PurchaseInvestment(db, user.ID, pkg.ID, 100)
	assert.NoError(t, err)
	_, err = PurchaseInvestment(db, user.ID, pkg.ID, 5000)
	assert.NoError(t, err)
}

func TestPurchaseInvestment_InsufficientBalance(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 200)
	pkg := seedPackage(t, db, 100, 5000, 3, 30)

	_, err := PurchaseInvestment(db, user.ID, pkg.ID, 300)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Balance untouched and no rows written
	assert.Equal(t, 200.0, currentBalance(t, db, user.ID))
	var investments int64
	db.Model(&models.Investment{}).Count(&investments)
	assert.Zero(t, investments)
	var entries int64
	db.Model(&models.Transaction{}).Count(&entries)
	assert.Zero(t, entries)
}

func TestPurchaseInvestment_PackageInactive(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 1000)

	_, err := PurchaseInvestment(db, user.ID, 999, 500)
	assert.ErrorIs(t, err, ErrPackageInactive)

	pkg := seedPackage(t, db, 100, 5000, 3, 30)
	require.NoError(t, db.Model(pkg).Update("status", models.PackageStatusInactive).Error)

	_, err = PurchaseInvestment(db, user.ID, pkg.ID, 500)
	assert.ErrorIs(t, err, ErrPackageInactive)
}

func TestRequestWithdrawal(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 500)

	entry, err := RequestWithdrawal(db, user.ID, 200, "pix", "key-123", 100)
	require.NoError(t, err)

	assert.Equal(t, models.TransactionStatusPending, entry.Status)
	assert.Equal(t, models.TransactionTypeWithdrawal, entry.Type)
	assert.True(t, strings.HasPrefix(entry.TransactionCode, "WIT"))

	// Balance is not debited at request time
	assert.Equal(t, 500.0, currentBalance(t, db, user.ID))
}

func TestRequestWithdrawal_Rules(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 500)

	_, err := RequestWithdrawal(db, user.ID, 50, "pix", "key", 100)
	assert.ErrorIs(t, err, ErrBelowMinimum)

	_, err = RequestWithdrawal(db, user.ID, 600, "pix", "key", 100)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	_, err = RequestWithdrawal(db, user.ID, 200, "pix", "key", 100)
	require.NoError(t, err)

	// Only one pending withdrawal per user
	_, err = RequestWithdrawal(db, user.ID, 150, "pix", "key", 100)
	assert.ErrorIs(t, err, ErrWithdrawalPending)
}

func TestReviewWithdrawal_Approve(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 500)

	entry, err := RequestWithdrawal(db, user.ID, 200, "pix", "key", 100)
	require.NoError(t, err)

	reviewed, err := ReviewWithdrawal(db, entry.ID, ReviewApprove, "checked")
	require.NoError(t, err)

	assert.Equal(t, models.TransactionStatusCompleted, reviewed.Status)
	assert.Contains(t, reviewed.Description, "checked")
	assert.Equal(t, 300.0, currentBalance(t, db, user.ID))

	// A second review of the same request must fail
	_, err = ReviewWithdrawal(db, entry.ID, ReviewApprove, "again")
	assert.ErrorIs(t, err, ErrNotPending)
	_, err = ReviewWithdrawal(db, entry.ID, ReviewReject, "again")
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, 300.0, currentBalance(t, db, user.ID))
}

func TestReviewWithdrawal_Reject(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 500)

	entry, err := RequestWithdrawal(db, user.ID, 200, "pix", "key", 100)
	require.NoError(t, err)

	reviewed, err := ReviewWithdrawal(db, entry.ID, ReviewReject, "suspicious destination")
	require.NoError(t, err)

	assert.Equal(t, models.TransactionStatusCancelled, reviewed.Status)
	assert.Contains(t, reviewed.Description, "suspicious destination")
	assert.Equal(t, 500.0, currentBalance(t, db, user.ID))

	// The slot frees up for a new request
	_, err = RequestWithdrawal(db, user.ID, 150, "pix", "key", 100)
	assert.NoError(t, err)
}

func TestReviewWithdrawal_BalanceRecheckedAtApproval(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 500)
	pkg := seedPackage(t, db, 100, 5000, 3, 30)

	entry, err := RequestWithdrawal(db, user.ID, 400, "pix", "key", 100)
	require.NoError(t, err)

	// The balance drains before the admin gets to it
	_, err = PurchaseInvestment(db, user.ID, pkg.ID, 300)
	require.NoError(t, err)

	_, err = ReviewWithdrawal(db, entry.ID, ReviewApprove, "ok")
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Rolled back: the request is still pending and the balance intact
	var reloaded models.Transaction
	require.NoError(t, db.First(&reloaded, entry.ID).Error)
	assert.Equal(t, models.TransactionStatusPending, reloaded.Status)
	assert.Equal(t, 200.0, currentBalance(t, db, user.ID))
}

func TestReviewWithdrawal_InvalidAction(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 500)

	entry, err := RequestWithdrawal(db, user.ID, 200, "pix", "key", 100)
	require.NoError(t, err)

	_, err = ReviewWithdrawal(db, entry.ID, "maybe", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestConfirmDeposit(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 100)

	entry, err := RequestDeposit(db, user.ID, 250, "pix", 100)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, entry.Status)
	assert.True(t, strings.HasPrefix(entry.TransactionCode, "DEP"))
	assert.Equal(t, 100.0, currentBalance(t, db, user.ID))

	confirmed, err := ConfirmDeposit(db, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, confirmed.Status)
	assert.Equal(t, 350.0, currentBalance(t, db, user.ID))

	// Confirming twice must not credit twice
	_, err = ConfirmDeposit(db, entry.ID)
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, 350.0, currentBalance(t, db, user.ID))
}

func TestRequestDeposit_BelowMinimum(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 0)

	_, err := RequestDeposit(db, user.ID, 50, "pix", 100)
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestProcessReturns(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 1000)
	pkg := seedPackage(t, db, 100, 5000, 10, 3)

	matured, err := PurchaseInvestment(db, user.ID, pkg.ID, 500)
	require.NoError(t, err)
	pending, err := PurchaseInvestment(db, user.ID, pkg.ID, 200)
	require.NoError(t, err)

	// Only the first investment has matured
	require.NoError(t, db.Model(matured).
		Update("next_return_date", time.Now().Add(-time.Hour)).Error)

	settled, err := ProcessReturns(db, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, settled)

	// 1000 - 500 - 200 + 50 return
	assert.Equal(t, 350.0, currentBalance(t, db, user.ID))

	var reloaded models.Investment
	require.NoError(t, db.First(&reloaded, matured.ID).Error)
	assert.Equal(t, models.InvestmentStatusCompleted, reloaded.Status)
	var reloadedPending models.Investment
	require.NoError(t, db.First(&reloadedPending, pending.ID).Error)
	assert.Equal(t, models.InvestmentStatusActive, reloadedPending.Status)

	var entry models.Transaction
	require.NoError(t, db.Where("type = ?", models.TransactionTypeReturn).First(&entry).Error)
	assert.Equal(t, 50.0, entry.Amount)
	assert.Equal(t, models.TransactionStatusCompleted, entry.Status)
	assert.True(t, strings.HasPrefix(entry.TransactionCode, "RET"))

	// A second run settles nothing new
	settled, err = ProcessReturns(db, time.Now())
	require.NoError(t, err)
	assert.Zero(t, settled)
	assert.Equal(t, 350.0, currentBalance(t, db, user.ID))
}

// The ledger invariant: after any sequence of completed deposits, completed
// withdrawals, investments and returns, balance equals the signed sum.
func TestBalanceMatchesLedger(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 0)
	pkg := seedPackage(t, db, 100, 10000, 5, 1)

	dep, err := RequestDeposit(db, user.ID, 2000, "pix", 100)
	require.NoError(t, err)
	_, err = ConfirmDeposit(db, dep.ID)
	require.NoError(t, err)

	inv, err := PurchaseInvestment(db, user.ID, pkg.ID, 800)
	require.NoError(t, err)

	require.NoError(t, db.Model(inv).Update("next_return_date", time.Now().Add(-time.Minute)).Error)
	_, err = ProcessReturns(db, time.Now())
	require.NoError(t, err)

	wit, err := RequestWithdrawal(db, user.ID, 300, "pix", "key", 100)
	require.NoError(t, err)
	_, err = ReviewWithdrawal(db, wit.ID, ReviewApprove, "ok")
	require.NoError(t, err)

	// One rejected withdrawal and one still-pending deposit must not count
	wit2, err := RequestWithdrawal(db, user.ID, 150, "pix", "key", 100)
	require.NoError(t, err)
	_, err = ReviewWithdrawal(db, wit2.ID, ReviewReject, "no")
	require.NoError(t, err)
	_, err = RequestDeposit(db, user.ID, 999, "pix", 100)
	require.NoError(t, err)

	summary, err := SummarizeTransactions(db, user.ID)
	require.NoError(t, err)

	expected := summary.TotalDeposits - summary.TotalWithdrawals - summary.TotalInvestments + summary.TotalReturns
	assert.Equal(t, expected, currentBalance(t, db, user.ID))
	assert.Equal(t, 940.0, currentBalance(t, db, user.ID))
}

func TestListTransactions_Filters(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 0)

	for i := 0; i < 3; i++ {
		_, err := RequestDeposit(db, user.ID, 200, "pix", 100)
		require.NoError(t, err)
	}
	_, err := RequestWithdrawal(db, user.ID, 100, "pix", "key", 100)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	entries, total, err := ListTransactions(db, TransactionFilter{UserID: user.ID, Type: models.TransactionTypeDeposit})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, entries, 3)

	entries, total, err = ListTransactions(db, TransactionFilter{UserID: user.ID, Type: models.TransactionTypeDeposit, Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, entries, 1)

	future := time.Now().Add(time.Hour)
	entries, total, err = ListTransactions(db, TransactionFilter{UserID: user.ID, StartDate: &future})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, entries)
}
