package packageValidator

import (
	"invest/middleware"
	"invest/services"

	"github.com/gofiber/fiber/v2"
)

// Package validates create/update input for an investment package. All five
// core fields must be present and numeric; min and max are intentionally not
// compared against each other.
func Package() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.PackageInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.MinAmount <= 0 {
			errors["min_amount"] = "Minimum amount must be greater than 0!"
		}
		if reqData.MaxAmount <= 0 {
			errors["max_amount"] = "Maximum amount must be greater than 0!"
		}
		if reqData.ReturnRate <= 0 {
			errors["return_rate"] = "Return rate must be greater than 0!"
		}
		if reqData.PeriodDays <= 0 {
			errors["period_days"] = "Period in days must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPackage", reqData)
		return c.Next()
	}
}
