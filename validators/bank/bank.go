package bankValidator

import (
	"ckb/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// WithdrawRequest is the POST /withdraw body. Amount must be a positive
// integer; the upstream source never checked this, we reject it here before
// the rule engine runs.
type WithdrawRequest struct {
	CustomerID uint `json:"customer_id" validate:"required"`
	AtmID      uint `json:"atm_id" validate:"required"`
	Amount     int  `json:"amount" validate:"required,gt=0"`
}

// ResetPinRequest is the POST /reset-pin body. The number tag is digits
// only; numeric would let signed strings like "+123" through.
type ResetPinRequest struct {
	CustomerID uint   `json:"customer_id" validate:"required"`
	NewPin     string `json:"new_pin" validate:"required,len=4,number"`
}

// AtmResetPinRequest is the POST /atm/reset-pin body
type AtmResetPinRequest struct {
	AtmID  uint   `json:"atm_id" validate:"required"`
	NewPin string `json:"new_pin" validate:"required,len=4,number"`
}

// Withdraw validates the withdrawal request body
func Withdraw() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(WithdrawRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "CustomerID":
					errors["customer_id"] = "Customer ID is required!"
				case "AtmID":
					errors["atm_id"] = "ATM ID is required!"
				case "Amount":
					errors["amount"] = "Amount must be greater than 0!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWithdraw", reqData)
		return c.Next()
	}
}

// ResetPin validates the customer PIN reset request body
func ResetPin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResetPinRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "CustomerID":
					errors["customer_id"] = "Customer ID is required!"
				case "NewPin":
					errors["new_pin"] = "PIN must be exactly 4 digits!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResetPin", reqData)
		return c.Next()
	}
}

// AtmResetPin validates the ATM operator PIN reset request body
func AtmResetPin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AtmResetPinRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "AtmID":
					errors["atm_id"] = "ATM ID is required!"
				case "NewPin":
					errors["new_pin"] = "PIN must be exactly 4 digits!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAtmResetPin", reqData)
		return c.Next()
	}
}
