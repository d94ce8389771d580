package authValidator

import (
	"ckb/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// LoginRequest is the POST /login body
type LoginRequest struct {
	CardName    string `json:"card_name" validate:"required"`
	Pin         string `json:"pin" validate:"required"`
	AtmLocation string `json:"atm_location" validate:"required"`
}

// Login validates the login request body
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "CardName":
					errors["card_name"] = "Card name is required!"
				case "Pin":
					errors["pin"] = "PIN is required!"
				case "AtmLocation":
					errors["atm_location"] = "ATM location is required!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
