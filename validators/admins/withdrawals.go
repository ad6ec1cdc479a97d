package adminValidator

import (
	"invest/middleware"
	"invest/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewWithdrawal validates the approve/reject request for a pending
// withdrawal
func ReviewWithdrawal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			WithdrawalID uint   `json:"withdrawal_id"`
			Action       string `json:"action"`
			Notes        string `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.WithdrawalID == 0 {
			errors["withdrawal_id"] = "Withdrawal ID is required!"
		}
		if reqData.Action != services.ReviewApprove && reqData.Action != services.ReviewReject {
			errors["action"] = "Action must be approve or reject!"
		}
		if reqData.Action == services.ReviewReject && reqData.Notes == "" {
			errors["notes"] = "A reason is required when rejecting!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// ConfirmDeposit validates the deposit confirmation request
func ConfirmDeposit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DepositID uint   `json:"deposit_id"`
			Reference string `json:"reference"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.DepositID == 0 {
			errors["deposit_id"] = "Deposit ID is required!"
		}
		if reqData.Reference == "" {
			errors["reference"] = "Payment reference is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedConfirmDeposit", reqData)
		return c.Next()
	}
}
