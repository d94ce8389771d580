package authRoutes

import (
	authController "ckb/controllers/auth"
	authValidator "ckb/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/login", authValidator.Login(), authController.Login)
}
