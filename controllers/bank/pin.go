package bankController

import (
	"ckb/database"
	"ckb/middleware"
	"ckb/models"
	bankValidator "ckb/validators/bank"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResetPin handles POST /reset-pin. Besides updating the PIN it "forgives"
// one daily transaction: the customer's most recent Transaction row dated
// today is deleted, shrinking the daily count by one. Balances are NOT
// reversed, so ledger totals and the audit snapshots drift apart on purpose.
func ResetPin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPin").(*bankValidator.ResetPinRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db
	day := Today()

	withdrawMu.Lock()
	defer withdrawMu.Unlock()

	forgiven := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, reqData.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		if err := tx.Model(&customer).Update("pin", reqData.NewPin).Error; err != nil {
			return err
		}

		// Latest creation timestamp wins the tie-break
		var lastTransaction models.Transaction
		err := tx.Where("customer_id = ? AND date = ?", customer.ID, day).
			Order("timestamp DESC, id DESC").
			First(&lastTransaction).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		// Hard delete: the row must be gone from daily aggregation, not
		// merely flagged. The ATMDetails snapshot stays untouched.
		if err := tx.Unscoped().Delete(&lastTransaction).Error; err != nil {
			return err
		}
		forgiven = true
		return nil
	})

	if err != nil {
		var rejection *WithdrawalError
		if errors.As(err, &rejection) {
			return middleware.ErrorResponse(c, rejection.StatusCode, rejection.Message)
		}
		log.Printf("Error resetting customer PIN: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to reset PIN!")
	}

	message := "No transactions to reset today"
	if forgiven {
		message = "Daily transaction count decremented (last transaction record removed)"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "success", message, nil)
}

// AtmResetPin handles POST /atm/reset-pin. Same PIN validation as the
// customer flow but no forgiveness side effect.
func AtmResetPin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAtmResetPin").(*bankValidator.AtmResetPinRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var atm models.ATM
	if err := db.First(&atm, reqData.AtmID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "ATM not found")
		}
		log.Printf("Error fetching ATM: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to reset PIN!")
	}

	if err := db.Model(&atm).Update("pin", reqData.NewPin).Error; err != nil {
		log.Printf("Error resetting ATM PIN: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to reset PIN!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "success", "ATM PIN updated", nil)
}
