package bankController

import (
	"ckb/database"
	"ckb/middleware"
	"ckb/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetCustomers handles GET /customers, a read-only passthrough of all rows
func GetCustomers(c *fiber.Ctx) error {
	var customers []models.Customer
	if err := database.Database.Db.Order("id").Find(&customers).Error; err != nil {
		log.Printf("Error fetching customers: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch customers!")
	}
	return c.JSON(customers)
}

// GetAtms handles GET /atms
func GetAtms(c *fiber.Ctx) error {
	var atms []models.ATM
	if err := database.Database.Db.Order("id").Find(&atms).Error; err != nil {
		log.Printf("Error fetching ATMs: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch ATMs!")
	}
	return c.JSON(atms)
}

// GetAtmLogs handles GET /atm/logs/:atmId, audit snapshots newest first
func GetAtmLogs(c *fiber.Ctx) error {
	atmID, err := c.ParamsInt("atmId")
	if err != nil || atmID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ATM id!")
	}

	var atm models.ATM
	if err := database.Database.Db.First(&atm, atmID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "ATM not found")
	}

	var logs []models.ATMDetails
	if err := database.Database.Db.
		Where("atm_id = ?", atmID).
		Order("timestamp DESC, id DESC").
		Find(&logs).Error; err != nil {
		log.Printf("Error fetching ATM logs: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch ATM logs!")
	}
	return c.JSON(logs)
}
