package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ATMDetails is the per-withdrawal audit snapshot, denormalized for reporting:
// which ATM, which customer, how much, and the resulting balances on both sides.
// Never updated or deleted, even when a PIN reset removes the Transaction row.
type ATMDetails struct {
	gorm.Model
	AtmID                uint           `gorm:"index;not null" json:"atm_id"`
	AtmLocation          string         `gorm:"not null" json:"atm_location"`
	CustomerID           uint           `gorm:"index;not null" json:"customer_id"`
	AmountWithdrawn      int            `gorm:"not null" json:"amount_withdrawn"`
	CustomerTotalBalance int            `gorm:"not null" json:"customer_total_balance"`
	AtmCurrentCash       int            `gorm:"not null" json:"atm_current_cash"`
	Date                 datatypes.Date `gorm:"index;not null" json:"date"`
	Timestamp            time.Time      `gorm:"not null" json:"timestamp"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Atm      ATM      `gorm:"foreignKey:AtmID" json:"-"`
}

func (ATMDetails) TableName() string {
	return "atm_details"
}
