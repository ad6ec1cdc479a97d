package adminRoutes

import (
	"invest/controllers/admins"
	"invest/middleware"
	"invest/models"
	adminValidator "invest/validators/admins"
	packageValidator "invest/validators/packages"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/dashboard", admins.DashboardStats)

	adminGroup.Get("/packages", admins.ListPackages)
	adminGroup.Post("/packages", packageValidator.Package(), admins.CreatePackage)
	adminGroup.Put("/packages/:id", packageValidator.Package(), admins.UpdatePackage)
	adminGroup.Delete("/packages/:id", admins.DeletePackage)

	adminGroup.Get("/withdrawals", admins.PendingWithdrawals)
	adminGroup.Post("/withdrawals/review", adminValidator.ReviewWithdrawal(), admins.ReviewWithdrawal)

	adminGroup.Get("/deposits", admins.PendingDeposits)
	adminGroup.Post("/deposits/confirm", adminValidator.ConfirmDeposit(), admins.ConfirmDeposit)

	adminGroup.Get("/users", admins.ListUsers)
	adminGroup.Patch("/users/:id/status", admins.SetUserStatus)
	adminGroup.Delete("/users/:id", admins.DeleteUser)

	adminGroup.Get("/transactions", admins.Transactions)
}
