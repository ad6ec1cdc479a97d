package investmentValidator

import (
	"invest/middleware"

	"github.com/gofiber/fiber/v2"
)

// Invest validates a package purchase request. Package bounds and balance
// are business rules checked by the workflow, not here.
func Invest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PackageID uint    `json:"package_id"`
			Amount    float64 `json:"amount"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PackageID == 0 {
			errors["package_id"] = "Package ID is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInvest", reqData)
		return c.Next()
	}
}
