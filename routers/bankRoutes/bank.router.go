package bankRoutes

import (
	bankController "ckb/controllers/bank"
	bankValidator "ckb/validators/bank"

	"github.com/gofiber/fiber/v2"
)

func SetupBankRoutes(app *fiber.App) {
	app.Get("/customers", bankController.GetCustomers)
	app.Get("/atms", bankController.GetAtms)

	app.Post("/withdraw", bankValidator.Withdraw(), bankController.Withdraw)
	app.Post("/reset-pin", bankValidator.ResetPin(), bankController.ResetPin)

	atmGroup := app.Group("/atm")
	atmGroup.Post("/reset-pin", bankValidator.AtmResetPin(), bankController.AtmResetPin)
	atmGroup.Get("/logs/:atmId", bankController.GetAtmLogs)
}
