package userRoutes

import (
	userController "invest/controllers/users"
	"invest/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users", middleware.JWTMiddleware, middleware.RateLimit())

	userGroup.Get("/profile", userController.Profile)
	userGroup.Put("/profile", userController.UpdateProfile)
	userGroup.Get("/notifications", userController.Notifications)
	userGroup.Patch("/notifications/:id/read", userController.MarkNotificationRead)
}
