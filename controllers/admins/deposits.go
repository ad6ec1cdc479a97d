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

// PendingDeposits lists deposits waiting for payment confirmation
func PendingDeposits(c *fiber.Ctx) error {
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
		Where("type = ? AND status = ?", models.TransactionTypeDeposit, models.TransactionStatusPending)

	var total int64
	query.Count(&total)

	var deposits []models.Transaction
	if err := query.Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&deposits).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch deposits!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending deposits fetched!", fiber.Map{
		"deposits": deposits,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ConfirmDeposit verifies the payment with the gateway and credits the balance
func ConfirmDeposit(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedConfirmDeposit").(*struct {
		DepositID uint   `json:"deposit_id"`
		Reference string `json:"reference"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	payment, err := utils.VerifyDepositPayment(reqData.Reference)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Could not verify the payment with the gateway!", nil)
	}
	if payment.Status != "paid" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment is not settled at the gateway!", nil)
	}

	entry, err := services.ConfirmDeposit(database.Database.Db, reqData.DepositID)
	if err != nil {
		if errors.Is(err, services.ErrNotPending) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Deposit not found or already confirmed!", nil)
		}
		log.Printf("Error confirming deposit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm deposit!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deposit confirmed and balance credited!", entry)
}
