package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"ckb/config"
	"ckb/database"
	"ckb/models"
	authRoutes "ckb/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{Port: "8000", DBName: "test", JWTKey: "testSecret"}

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath+"?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.ATM{},
		&models.Transaction{},
		&models.ATMDetails{},
		&models.LoginTracking{},
	))
	require.NoError(t, database.SeedInitialData(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body fiber.Map) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/login", &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestLoginCustomerSuccess(t *testing.T) {
	app := setupTestApp(t)

	code, body := postLogin(t, app, fiber.Map{
		"card_name":    "tom",
		"pin":          "1234",
		"atm_location": "Indiranagar",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "customer", body["user_type"])
	assert.NotEmpty(t, body["token"])
	assert.NotNil(t, body["customer"])
	assert.NotNil(t, body["atm"])

	customer := body["customer"].(map[string]interface{})
	assert.Equal(t, "Tom", customer["name"])
	assert.EqualValues(t, 20, customer["balance"])

	// Customer identity binds to the physical device
	var atm models.ATM
	require.NoError(t, database.Database.Db.Where("location = ?", "Indiranagar").First(&atm).Error)
	assert.EqualValues(t, atm.ID, body["atm_id"])
}

func TestLoginWrongPin(t *testing.T) {
	app := setupTestApp(t)

	code, body := postLogin(t, app, fiber.Map{
		"card_name":    "tom",
		"pin":          "0000",
		"atm_location": "Indiranagar",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Incorrect PIN", body["message"])
}

func TestLoginUnknownCard(t *testing.T) {
	app := setupTestApp(t)

	code, body := postLogin(t, app, fiber.Map{
		"card_name":    "nobody",
		"pin":          "1234",
		"atm_location": "Indiranagar",
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User not found", body["message"])
}

func TestLoginUnknownAtmLocation(t *testing.T) {
	app := setupTestApp(t)

	code, body := postLogin(t, app, fiber.Map{
		"card_name":    "tom",
		"pin":          "1234",
		"atm_location": "Nowhere",
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "ATM location not found", body["message"])
}

func TestLoginAtmOperatorBindsToOwnAtm(t *testing.T) {
	app := setupTestApp(t)

	// INDIRA operator logging in from the Malnad device still gets the
	// Indiranagar ATM identity.
	code, body := postLogin(t, app, fiber.Map{
		"card_name":    "INDIRA",
		"pin":          "0000",
		"atm_location": "Malnad",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "atm", body["user_type"])
	assert.NotEmpty(t, body["token"])
	assert.Nil(t, body["customer_id"])

	var indira models.ATM
	require.NoError(t, database.Database.Db.Where("card_name = ?", "INDIRA").First(&indira).Error)
	assert.EqualValues(t, indira.ID, body["atm_id"])
}

func TestLoginAtmOperatorWrongPin(t *testing.T) {
	app := setupTestApp(t)

	code, body := postLogin(t, app, fiber.Map{
		"card_name":    "MALNAD",
		"pin":          "1111",
		"atm_location": "Malnad",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Incorrect PIN", body["message"])
}

func TestLoginRecordsTracking(t *testing.T) {
	app := setupTestApp(t)

	code, _ := postLogin(t, app, fiber.Map{
		"card_name":    "jerry",
		"pin":          "1234",
		"atm_location": "Malnad",
	})
	require.Equal(t, http.StatusOK, code)

	var tracking models.LoginTracking
	require.NoError(t, database.Database.Db.Where("card_name = ?", "jerry").First(&tracking).Error)
	assert.Equal(t, "customer", tracking.UserType)
	assert.Equal(t, "Malnad", tracking.AtmLocation)
}

func TestLoginValidation(t *testing.T) {
	app := setupTestApp(t)

	code, body := postLogin(t, app, fiber.Map{
		"card_name": "tom",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", body["status"])
}
