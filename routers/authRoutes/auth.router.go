package authRoutes

import (
	authController "invest/controllers/auth"
	"invest/middleware"
	authValidator "invest/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Get("/activate", authController.Activate)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/token-login", authController.TokenLogin)
	authGroup.Post("/logout", authController.Logout)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authController.LoginHistory)
}
