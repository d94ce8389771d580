package models

import (
	"gorm.io/gorm"
)

// ATM is a simulated cash machine. CardName is the operator login card
// (e.g. INDIRA, MALNAD); CurrentCash never drops below zero.
type ATM struct {
	gorm.Model
	Location    string `gorm:"uniqueIndex;not null" json:"location"`
	CardName    string `gorm:"uniqueIndex;not null" json:"card_name"`
	Pin         string `gorm:"type:varchar(4);default:'0000'" json:"-"`
	CurrentCash int    `gorm:"not null;default:0" json:"current_cash"`
}

func (ATM) TableName() string {
	return "atms"
}
