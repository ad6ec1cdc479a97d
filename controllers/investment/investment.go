package investmentController

import (
	"errors"
	"invest/database"
	"invest/middleware"
	"invest/models"
	"invest/services"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListPackages returns the active packages available for purchase
func ListPackages(c *fiber.Ctx) error {
	var packages []models.InvestmentPackage
	if err := database.Database.Db.
		Where("status = ?", models.PackageStatusActive).
		Order("min_amount ASC").
		Find(&packages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch packages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Packages fetched!", packages)
}

// Invest purchases a package with funds from the user's balance
func Invest(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedInvest").(*struct {
		PackageID uint    `json:"package_id"`
		Amount    float64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	investment, err := services.PurchaseInvestment(database.Database.Db, userId, reqData.PackageID, reqData.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPackageInactive):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid investment package!", nil)
		case errors.Is(err, services.ErrAmountOutOfRange):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Amount is outside the package limits!", nil)
		case errors.Is(err, services.ErrInsufficientBalance):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient balance for this investment!", nil)
		default:
			log.Printf("Error purchasing investment: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process investment. Try again.", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Investment created successfully!", investment)
}

// MyInvestments lists the caller's investments, optionally by status
func MyInvestments(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	db := database.Database.Db
	query := db.Model(&models.Investment{}).Where("user_id = ?", userId)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var investments []models.Investment
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&investments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch investments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Investments fetched!", fiber.Map{
		"investments": investments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// InvestmentDetails returns one investment owned by the caller
func InvestmentDetails(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid investment ID!", nil)
	}

	var investment models.Investment
	if err := database.Database.Db.
		Preload("Package").
		Where("id = ? AND user_id = ?", id, userId).
		First(&investment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Investment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Investment fetched!", fiber.Map{
		"investment": investment,
		"package":    investment.Package,
	})
}

// InvestmentStats aggregates the caller's invested and returned totals
func InvestmentStats(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var stats struct {
		ActiveCount    int64   `json:"active_count"`
		CompletedCount int64   `json:"completed_count"`
		TotalInvested  float64 `json:"total_invested"`
		ExpectedReturn float64 `json:"expected_return"`
	}

	db.Model(&models.Investment{}).
		Where("user_id = ? AND status = ?", userId, models.InvestmentStatusActive).
		Count(&stats.ActiveCount)
	db.Model(&models.Investment{}).
		Where("user_id = ? AND status = ?", userId, models.InvestmentStatusCompleted).
		Count(&stats.CompletedCount)

	row := db.Model(&models.Investment{}).
		Select("COALESCE(SUM(amount), 0), COALESCE(SUM(return_amount), 0)").
		Where("user_id = ? AND status = ?", userId, models.InvestmentStatusActive).
		Row()
	if err := row.Scan(&stats.TotalInvested, &stats.ExpectedReturn); err != nil {
		log.Printf("Error scanning investment stats: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched!", stats)
}
