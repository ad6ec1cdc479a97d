package investmentRoutes

import (
	investmentController "invest/controllers/investment"
	"invest/middleware"
	"invest/models"
	investmentValidator "invest/validators/investment"

	"github.com/gofiber/fiber/v2"
)

func SetupInvestmentRoutes(app *fiber.App) {
	// Active packages are public, like the marketing pages
	app.Get("/packages", investmentController.ListPackages)

	investGroup := app.Group("/investments", middleware.JWTMiddleware, middleware.RequireRole(models.RoleClient), middleware.RateLimit())

	investGroup.Get("/", investmentController.MyInvestments)
	investGroup.Post("/", investmentValidator.Invest(), investmentController.Invest)
	investGroup.Get("/stats", investmentController.InvestmentStats)
	investGroup.Get("/:id", investmentController.InvestmentDetails)
}
