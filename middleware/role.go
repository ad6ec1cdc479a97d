package middleware

import (
	"invest/database"
	"invest/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that loads the authenticated user and
// checks role and account status against the database, not just the token
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
		}

		var user models.User
		err := database.Database.Db.
			Where("id = ? AND status = ?", userID, models.UserStatusActive).
			First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return JsonResponse(c, fiber.StatusUnauthorized, false, "Account is not active!", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking access!", nil)
		}

		if user.Role != role {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		c.Locals("user", &user)
		return c.Next()
	}
}
