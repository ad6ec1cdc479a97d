package admins

import (
	"errors"
	"invest/database"
	"invest/middleware"
	"invest/models"
	"invest/services"
	"invest/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// PendingWithdrawals lists withdrawal requests awaiting review, oldest first
func PendingWithdrawals(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	db := database.Database.Db
	query := db.Model(&models.Transaction{}).
		Where("type = ? AND status = ?", models.TransactionTypeWithdrawal, models.TransactionStatusPending)

	var total int64
	query.Count(&total)

	var withdrawals []models.Transaction
	if err := query.Preload("User").
		Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&withdrawals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch withdrawals!", nil)
	}

	type item struct {
		models.Transaction
		Username string  `json:"username"`
		Email    string  `json:"email"`
		Balance  float64 `json:"user_balance"`
	}
	response := make([]item, 0, len(withdrawals))
	for _, w := range withdrawals {
		response = append(response, item{
			Transaction: w,
			Username:    w.User.Username,
			Email:       w.User.Email,
			Balance:     w.User.Balance,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending withdrawals fetched!", fiber.Map{
		"withdrawals": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ReviewWithdrawal approves or rejects a pending withdrawal request
func ReviewWithdrawal(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReview").(*struct {
		WithdrawalID uint   `json:"withdrawal_id"`
		Action       string `json:"action"`
		Notes        string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	entry, err := services.ReviewWithdrawal(db, reqData.WithdrawalID, reqData.Action, reqData.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotPending):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Withdrawal not found or already reviewed!", nil)
		case errors.Is(err, services.ErrInsufficientBalance):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User balance no longer covers this withdrawal!", nil)
		default:
			log.Printf("Error reviewing withdrawal: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review withdrawal!", nil)
		}
	}

	// Notify the client about the outcome
	var user models.User
	if err := db.First(&user, entry.UserID).Error; err == nil {
		title := "Withdrawal approved"
		if entry.Status == models.TransactionStatusCancelled {
			title = "Withdrawal rejected"
		}
		db.Create(&models.Notification{
			UserID:  entry.UserID,
			Title:   title,
			Message: "Your withdrawal " + entry.TransactionCode + " was reviewed.",
		})
		go func(email, name, code, status string, amount float64) {
			if err := utils.SendWithdrawalEmail(email, name, code, status, amount); err != nil {
				log.Printf("Error sending withdrawal email: %v", err)
			}
		}(user.Email, user.Name, entry.TransactionCode, entry.Status, entry.Amount)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal reviewed!", entry)
}
