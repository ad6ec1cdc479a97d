package admins

import (
	"invest/database"
	"invest/middleware"
	"invest/models"

	"github.com/gofiber/fiber/v2"
)

// ListUsers returns clients for the back office, filtered by status or search
func ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	db := database.Database.Db
	query := db.Model(&models.User{}).Where("role = ?", models.RoleClient)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("email LIKE ? OR username LIKE ? OR name LIKE ?", like, like, like)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// SetUserStatus activates or suspends a client account
func SetUserStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	reqData := new(struct {
		Status string `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Status != models.UserStatusActive && reqData.Status != models.UserStatusSuspended {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be active or suspended!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND role = ?", id, models.RoleClient).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Status = reqData.Status
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User status updated!", user)
}

// DeleteUser soft-deletes a client account. Accounts holding active
// investments cannot be removed.
func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND role = ?", id, models.RoleClient).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var active int64
	if err := db.Model(&models.Investment{}).
		Where("user_id = ? AND status = ?", user.ID, models.InvestmentStatusActive).
		Count(&active).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check investments!", nil)
	}
	if active > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User cannot be deleted: active investments exist.", nil)
	}

	if err := db.Delete(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted!", nil)
}

// Transactions lists the whole ledger for the back office
func Transactions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	db := database.Database.Db
	query := db.Model(&models.Transaction{})

	if txType := c.Query("type"); txType != "" {
		query = query.Where("type = ?", txType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if userID := c.QueryInt("user_id", 0); userID > 0 {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	query.Count(&total)

	var entries []models.Transaction
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched!", fiber.Map{
		"transactions": entries,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// DashboardStats aggregates the figures shown on the admin dashboard
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var stats struct {
		TotalClients       int64   `json:"total_clients"`
		PendingWithdrawals int64   `json:"pending_withdrawals"`
		PendingDeposits    int64   `json:"pending_deposits"`
		ActiveInvestments  int64   `json:"active_investments"`
		TotalInvested      float64 `json:"total_invested"`
		OpenTickets        int64   `json:"open_tickets"`
	}

	db.Model(&models.User{}).Where("role = ?", models.RoleClient).Count(&stats.TotalClients)
	db.Model(&models.Transaction{}).
		Where("type = ? AND status = ?", models.TransactionTypeWithdrawal, models.TransactionStatusPending).
		Count(&stats.PendingWithdrawals)
	db.Model(&models.Transaction{}).
		Where("type = ? AND status = ?", models.TransactionTypeDeposit, models.TransactionStatusPending).
		Count(&stats.PendingDeposits)
	db.Model(&models.Investment{}).
		Where("status = ?", models.InvestmentStatusActive).
		Count(&stats.ActiveInvestments)
	db.Model(&models.Investment{}).
		Where("status = ?", models.InvestmentStatusActive).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalInvested)
	db.Model(&models.SupportTicket{}).
		Where("status <> ?", models.TicketStatusResolved).
		Count(&stats.OpenTickets)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched!", stats)
}
