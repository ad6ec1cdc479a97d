package middleware

import (
	"fmt"
	"invest/config"
	"invest/database"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RateLimit enforces a fixed-window request counter per authenticated user,
// backed by redis INCR/EXPIRE. When redis is unavailable requests pass
// through rather than failing closed.
func RateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		rdb := database.Redis
		if rdb == nil {
			return c.Next()
		}

		ctx := c.Context()
		key := fmt.Sprintf("rate_limit:%d", userID)

		current, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			return c.Next()
		}
		if current == 1 {
			rdb.Expire(ctx, key, time.Duration(config.AppConfig.APIRateWindow)*time.Second)
		}

		if current > int64(config.AppConfig.APIRateLimit) {
			ttl, _ := rdb.TTL(ctx, key).Result()
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status":      false,
				"message":     "Too Many Requests",
				"retry_after": int(ttl.Seconds()),
			})
		}

		return c.Next()
	}
}
