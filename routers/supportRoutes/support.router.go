package supportRoutes

import (
	supportController "invest/controllers/support"
	"invest/middleware"
	"invest/models"
	supportValidator "invest/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	support := app.Group("/support", middleware.JWTMiddleware)

	support.Post("/create", middleware.RequireRole(models.RoleClient), supportValidator.CreateTicket(), supportController.CreateTicket)
	support.Get("/list", middleware.RequireRole(models.RoleClient), supportController.MyTickets)
	support.Get("/admin-list", middleware.RequireRole(models.RoleAdmin), supportController.AdminTicketList)
	support.Post("/admin-reply", middleware.RequireRole(models.RoleAdmin), supportValidator.AdminReply(), supportController.AdminReply)
}
