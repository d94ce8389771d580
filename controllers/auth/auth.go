package authController

import (
	"ckb/database"
	"ckb/middleware"
	"ckb/models"
	authValidator "ckb/validators/auth"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Login handles POST /login. The card is tried as an ATM-operator card
// first; operator identities bind to their own ATM no matter which physical
// device they log in from. PINs are plain 4-digit strings compared byte for
// byte, with no lockout after repeated failures.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	// The physical device must exist regardless of who is logging in
	var deviceAtm models.ATM
	if err := db.Where("location = ?", reqData.AtmLocation).First(&deviceAtm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "ATM location not found")
		}
		log.Printf("Error resolving ATM location: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process login!")
	}

	// ATM operator login
	var operatorAtm models.ATM
	err := db.Where("card_name = ?", reqData.CardName).First(&operatorAtm).Error
	if err == nil {
		if operatorAtm.Pin != reqData.Pin {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Incorrect PIN")
		}

		recordLogin(0, reqData.CardName, reqData.AtmLocation, "atm", c)

		token, err := middleware.GenerateJWT(operatorAtm.ID, "atm", operatorAtm.CardName, operatorAtm.ID)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate token")
		}

		return middleware.JsonResponse(c, fiber.StatusOK, "success", "Login successful.", fiber.Map{
			"user_type": "atm",
			"atm_id":    operatorAtm.ID,
			"atm":       operatorAtm,
			"token":     token,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error resolving operator card: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process login!")
	}

	// Customer login, bound to the physical device
	var customer models.Customer
	if err := db.Where("card_name = ?", reqData.CardName).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("Error resolving customer card: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process login!")
	}

	if customer.Pin != reqData.Pin {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Incorrect PIN")
	}

	recordLogin(customer.ID, reqData.CardName, reqData.AtmLocation, "customer", c)

	token, err := middleware.GenerateJWT(customer.ID, "customer", customer.CardName, deviceAtm.ID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "success", "Login successful.", fiber.Map{
		"user_type":   "customer",
		"customer_id": customer.ID,
		"atm_id":      deviceAtm.ID,
		"customer":    customer,
		"atm":         deviceAtm,
		"token":       token,
	})
}

// recordLogin captures login tracking details; failures are logged, never fatal
func recordLogin(customerID uint, cardName, atmLocation, userType string, c *fiber.Ctx) {
	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	tracking := models.LoginTracking{
		CustomerID:  customerID,
		CardName:    cardName,
		AtmLocation: atmLocation,
		UserType:    userType,
		IPAddress:   ip,
		Device:      c.Get("User-Agent"),
		Timestamp:   time.Now(),
	}

	if err := database.Database.Db.Create(&tracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}
}
