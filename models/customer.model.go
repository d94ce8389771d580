package models

import (
	"gorm.io/gorm"
)

// CustomerStatus defines the account standing of a customer
type CustomerStatus string

const (
	CustomerStatusActive     CustomerStatus = "Active"
	CustomerStatusDisabled   CustomerStatus = "Disabled"
	CustomerStatusCreditOnly CustomerStatus = "CreditOnly"
)

// Customer is a kids-bank account holder. Balance is in whole CKB.
// CreditOnly customers may carry a negative balance; everyone else stays >= 0.
type Customer struct {
	gorm.Model
	Name     string         `gorm:"not null" json:"name"`
	CardName string         `gorm:"uniqueIndex;not null" json:"card_name"`
	Pin      string         `gorm:"type:varchar(4);default:'1234'" json:"-"`
	Balance  int            `gorm:"not null;default:0" json:"balance"`
	Status   CustomerStatus `gorm:"type:varchar(20);default:'Active'" json:"status"`
}

func (Customer) TableName() string {
	return "customers"
}
