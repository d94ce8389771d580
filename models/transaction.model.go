package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Transaction is one withdrawal: money left an ATM to a customer.
// Rows are append-only with a single exception: a customer PIN reset deletes
// the most recent same-day row to forgive one strike against the daily count.
type Transaction struct {
	gorm.Model
	CustomerID  uint           `gorm:"index;not null" json:"customer_id"`
	AtmID       uint           `gorm:"index;not null" json:"atm_id"`
	Amount      int            `gorm:"not null" json:"amount"`
	ReferenceNo string         `gorm:"type:varchar(64);uniqueIndex" json:"reference_no"`
	Date        datatypes.Date `gorm:"index;not null" json:"date"`
	Timestamp   time.Time      `gorm:"not null" json:"timestamp"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Atm      ATM      `gorm:"foreignKey:AtmID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
