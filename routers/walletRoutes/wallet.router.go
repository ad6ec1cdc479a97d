package walletRoutes

import (
	walletController "invest/controllers/wallet"
	"invest/middleware"
	"invest/models"
	walletValidator "invest/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	walletGroup := app.Group("/wallet", middleware.JWTMiddleware, middleware.RequireRole(models.RoleClient), middleware.RateLimit())

	walletGroup.Get("/balance", walletController.GetBalance)
	walletGroup.Post("/deposit", walletValidator.Deposit(), walletController.Deposit)
	walletGroup.Post("/withdraw", walletValidator.Withdraw(), walletController.Withdraw)
	walletGroup.Get("/history", walletController.History)
	walletGroup.Get("/summary", walletController.Summary)
}
