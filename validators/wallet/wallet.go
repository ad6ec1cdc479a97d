package walletValidator

import (
	"invest/middleware"

	"github.com/gofiber/fiber/v2"
)

// Deposit validates a deposit request
func Deposit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount float64 `json:"amount"`
			Method string  `json:"method"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if reqData.Method == "" {
			errors["method"] = "Payment method is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDeposit", reqData)
		return c.Next()
	}
}

// Withdraw validates a withdrawal request
func Withdraw() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount        float64 `json:"amount"`
			Method        string  `json:"method"`
			WalletAddress string  `json:"wallet_address"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if reqData.Method == "" {
			errors["method"] = "Withdrawal method is required!"
		}
		if reqData.WalletAddress == "" {
			errors["wallet_address"] = "Destination account or wallet is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWithdraw", reqData)
		return c.Next()
	}
}
