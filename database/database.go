package database

import (
	"ckb/config"
	"ckb/models"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the sqlite database file, migrates the schema and seeds
// the initial ATMs and customers on first boot.
func ConnectDb() {
	// _busy_timeout keeps concurrent writers waiting instead of failing fast
	db, err := gorm.Open(sqlite.Open(config.AppConfig.DBName+"?_busy_timeout=5000"), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to sqlite database %s: %v", config.AppConfig.DBName, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(1) // sqlite: single writer, avoid SQLITE_BUSY races
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	if err := SeedInitialData(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Customer{},
		&models.ATM{},
		&models.Transaction{},
		&models.ATMDetails{},
		&models.LoginTracking{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// SeedInitialData inserts the two ATMs and five customers the simulation
// starts with. It is a no-op when the ATM table is already populated.
func SeedInitialData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ATM{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	atms := []models.ATM{
		{Location: "Indiranagar", CardName: "INDIRA", Pin: "0000", CurrentCash: 5000},
		{Location: "Malnad", CardName: "MALNAD", Pin: "0000", CurrentCash: 5000},
	}
	if err := db.Create(&atms).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{Name: "Tom", CardName: "tom", Pin: "1234", Balance: 20, Status: models.CustomerStatusActive},
		{Name: "Jerry", CardName: "jerry", Pin: "1234", Balance: 16, Status: models.CustomerStatusActive},
		{Name: "Chhota Bheem", CardName: "bheem", Pin: "1234", Balance: 22, Status: models.CustomerStatusActive},
		{Name: "Kirmada", CardName: "kirmada", Pin: "1234", Balance: 0, Status: models.CustomerStatusDisabled},
		{Name: "Little Singham", CardName: "little", Pin: "1234", Balance: 0, Status: models.CustomerStatusCreditOnly},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	log.Println("Seeded initial ATMs and customers.")
	return nil
}
