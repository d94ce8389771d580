package models

import (
	"time"

	"gorm.io/gorm"
)

type LoginTracking struct {
	gorm.Model
	CustomerID  uint      `json:"customer_id"` // zero for ATM-operator logins
	CardName    string    `json:"card_name"`
	AtmLocation string    `json:"atm_location"`
	UserType    string    `json:"user_type"` // "customer" or "atm"
	IPAddress   string    `json:"ip_address"`
	Device      string    `json:"device"`
	Timestamp   time.Time `json:"timestamp"`
}
