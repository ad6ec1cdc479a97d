package supportValidator

import (
	"invest/middleware"
	"invest/models"

	"github.com/gofiber/fiber/v2"
)

var validPriorities = map[string]bool{
	models.TicketPriorityLow:    true,
	models.TicketPriorityMedium: true,
	models.TicketPriorityHigh:   true,
}

// CreateTicket validates a new support ticket
func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Subject  string `json:"subject"`
			Message  string `json:"message"`
			Priority string `json:"priority"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Subject == "" {
			errors["subject"] = "Subject is required!"
		}
		if reqData.Message == "" {
			errors["message"] = "Message is required!"
		}
		if reqData.Priority != "" && !validPriorities[reqData.Priority] {
			errors["priority"] = "Priority must be low, medium or high!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicket", reqData)
		return c.Next()
	}
}

// AdminReply validates an admin ticket response
func AdminReply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TicketID uint   `json:"ticket_id"`
			Response string `json:"response"`
			Status   string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TicketID == 0 {
			errors["ticket_id"] = "Ticket ID is required!"
		}
		if reqData.Response == "" {
			errors["response"] = "Response is required!"
		}
		switch reqData.Status {
		case models.TicketStatusPending, models.TicketStatusInProgress, models.TicketStatusResolved:
		default:
			errors["status"] = "Status must be pending, in_progress or resolved!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}
