package walletController

import (
	"errors"
	"invest/config"
	"invest/database"
	"invest/middleware"
	"invest/models"
	"invest/services"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetBalance returns the user's current balance
func GetBalance(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Balance fetched!", fiber.Map{
		"balance": user.Balance,
	})
}

// Deposit records a pending deposit awaiting payment confirmation
func Deposit(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedDeposit").(*struct {
		Amount float64 `json:"amount"`
		Method string  `json:"method"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	entry, err := services.RequestDeposit(database.Database.Db, userId, reqData.Amount, reqData.Method, config.AppConfig.MinDeposit)
	if err != nil {
		if errors.Is(err, services.ErrBelowMinimum) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "The minimum deposit is 100.00!", nil)
		}
		log.Printf("Error creating deposit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create deposit!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Deposit registered. Complete the payment to credit your balance.", fiber.Map{
		"transaction_code": entry.TransactionCode,
		"amount":           entry.Amount,
		"status":           entry.Status,
	})
}

// Withdraw records a pending withdrawal for admin review. The balance is
// debited only when the request is approved.
func Withdraw(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedWithdraw").(*struct {
		Amount        float64 `json:"amount"`
		Method        string  `json:"method"`
		WalletAddress string  `json:"wallet_address"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	entry, err := services.RequestWithdrawal(database.Database.Db, userId, reqData.Amount,
		reqData.Method, reqData.WalletAddress, config.AppConfig.MinWithdrawal)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWithdrawalPending):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already have a pending withdrawal. Wait for approval.", nil)
		case errors.Is(err, services.ErrBelowMinimum):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "The minimum withdrawal is 100.00!", nil)
		case errors.Is(err, services.ErrInsufficientBalance):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient balance for this withdrawal!", nil)
		default:
			log.Printf("Error creating withdrawal: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create withdrawal!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Withdrawal request submitted. Wait for approval.", fiber.Map{
		"transaction_code": entry.TransactionCode,
		"amount":           entry.Amount,
		"status":           entry.Status,
	})
}

// History lists the caller's ledger entries with type/status/date filters
func History(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	filter := services.TransactionFilter{
		UserID: userId,
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}
	if start := c.Query("start_date"); start != "" {
		if t, err := time.Parse("2006-01-02", start); err == nil {
			filter.StartDate = &t
		}
	}
	if end := c.Query("end_date"); end != "" {
		if t, err := time.Parse("2006-01-02", end); err == nil {
			// include the whole end day
			t = t.AddDate(0, 0, 1).Add(-time.Second)
			filter.EndDate = &t
		}
	}

	entries, total, err := services.ListTransactions(database.Database.Db, filter)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched!", fiber.Map{
		"transactions": entries,
		"pagination": fiber.Map{
			"total": total,
			"page":  filter.Page,
			"limit": filter.Limit,
		},
	})
}

// Summary returns the signed totals backing the client dashboard
func Summary(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	summary, err := services.SummarizeTransactions(database.Database.Db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch summary!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary fetched!", summary)
}
