package database_test

import (
	"path/filepath"
	"testing"

	"ckb/database"
	"ckb/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.ATM{},
		&models.Transaction{},
		&models.ATMDetails{},
		&models.LoginTracking{},
	))
	return db
}

func TestSeedInitialData(t *testing.T) {
	db := openTestDb(t)
	require.NoError(t, database.SeedInitialData(db))

	var atmCount, customerCount int64
	require.NoError(t, db.Model(&models.ATM{}).Count(&atmCount).Error)
	require.NoError(t, db.Model(&models.Customer{}).Count(&customerCount).Error)
	assert.EqualValues(t, 2, atmCount)
	assert.EqualValues(t, 5, customerCount)

	var indira models.ATM
	require.NoError(t, db.Where("location = ?", "Indiranagar").First(&indira).Error)
	assert.Equal(t, "INDIRA", indira.CardName)
	assert.Equal(t, "0000", indira.Pin)
	assert.Equal(t, 5000, indira.CurrentCash)

	var statuses []models.CustomerStatus
	require.NoError(t, db.Model(&models.Customer{}).Order("id").Pluck("status", &statuses).Error)
	assert.Equal(t, []models.CustomerStatus{
		models.CustomerStatusActive,
		models.CustomerStatusActive,
		models.CustomerStatusActive,
		models.CustomerStatusDisabled,
		models.CustomerStatusCreditOnly,
	}, statuses)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDb(t)
	require.NoError(t, database.SeedInitialData(db))
	require.NoError(t, database.SeedInitialData(db))

	var atmCount, customerCount int64
	require.NoError(t, db.Model(&models.ATM{}).Count(&atmCount).Error)
	require.NoError(t, db.Model(&models.Customer{}).Count(&customerCount).Error)
	assert.EqualValues(t, 2, atmCount)
	assert.EqualValues(t, 5, customerCount)
}
