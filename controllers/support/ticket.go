package supportController

import (
	"errors"
	"invest/database"
	"invest/middleware"
	"invest/models"
	"invest/services"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateTicket opens a support ticket for the caller
func CreateTicket(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTicket").(*struct {
		Subject  string `json:"subject"`
		Message  string `json:"message"`
		Priority string `json:"priority"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket, err := services.CreateTicket(database.Database.Db, userId, reqData.Subject, reqData.Message, reqData.Priority)
	if err != nil {
		log.Printf("Error creating support ticket: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create support ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Support ticket created successfully!", ticket)
}

// MyTickets lists the caller's tickets with optional filters
func MyTickets(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	db := database.Database.Db
	query := db.Model(&models.SupportTicket{}).Where("user_id = ?", userId)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}

	var total int64
	query.Count(&total)

	var tickets []models.SupportTicket
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminTicketList lists all tickets for the back office
func AdminTicketList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	db := database.Database.Db
	query := db.Model(&models.SupportTicket{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}

	var total int64
	query.Count(&total)

	var tickets []models.SupportTicket
	if err := query.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminReply stores the admin response and advances the ticket status
func AdminReply(c *fiber.Ctx) error {
	adminId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReply").(*struct {
		TicketID uint   `json:"ticket_id"`
		Response string `json:"response"`
		Status   string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket, err := services.RespondTicket(database.Database.Db, reqData.TicketID, adminId, reqData.Response, reqData.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTicketNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
		case errors.Is(err, services.ErrInvalidStatus):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Tickets move from pending to in_progress to resolved.", nil)
		default:
			log.Printf("Error replying to ticket: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reply to ticket!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Response sent successfully!", ticket)
}
