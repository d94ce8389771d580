package bankController

import (
	"ckb/database"
	"ckb/middleware"
	"ckb/models"
	bankValidator "ckb/validators/bank"
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Withdrawal policy constants, in CKB
const (
	MaxPerTransaction = 10
	MaxDailyAmount    = 25
	MaxDailyCount     = 3
)

// RefillRule tops an ATM back up once its cash dips below Threshold.
type RefillRule struct {
	Threshold int
	Amount    int
}

// RefillRules is keyed by ATM location. ATMs without an entry never refill.
var RefillRules = map[string]RefillRule{
	"Indiranagar": {Threshold: 25, Amount: 75},
	"Malnad":      {Threshold: 10, Amount: 40},
}

// WithdrawalError is a rejected withdrawal with its HTTP status and the
// user-facing reason. The authorizer returns the first violated rule only.
type WithdrawalError struct {
	StatusCode int
	Message    string
}

func (e *WithdrawalError) Error() string {
	return e.Message
}

var (
	ErrCustomerNotFound    = &WithdrawalError{fiber.StatusNotFound, "User not found"}
	ErrAccessDenied        = &WithdrawalError{fiber.StatusForbidden, "Access Denied"}
	ErrPerTransactionLimit = &WithdrawalError{fiber.StatusBadRequest, "Max 10 CKB per transaction"}
	ErrDailyAmountLimit    = &WithdrawalError{fiber.StatusBadRequest, "Max 25 CKB per day"}
	ErrDailyCountLimit     = &WithdrawalError{fiber.StatusBadRequest, "Max 3 transactions per day"}
	ErrAtmNotFound         = &WithdrawalError{fiber.StatusNotFound, "ATM not found"}
	ErrInsufficientFunds   = &WithdrawalError{fiber.StatusBadRequest, "Insufficient funds"}
	ErrAtmOutOfCash        = &WithdrawalError{fiber.StatusBadRequest, "ATM Out of Cash"}
)

// withdrawMu serializes authorize+settle across requests so two concurrent
// withdrawals can never both observe pre-debit balances and daily totals.
var withdrawMu sync.Mutex

// Today returns the current calendar date in the system's local timezone.
func Today() datatypes.Date {
	return datatypes.Date(time.Now())
}

// DailyUsage sums today's withdrawn amount and counts today's transactions
// for a customer. Runs on the caller's transaction handle so the read shares
// the atomic scope of the authorization decision.
func DailyUsage(tx *gorm.DB, customerID uint, day datatypes.Date) (int, int, error) {
	var usage struct {
		Total int64
		Count int64
	}
	err := tx.Model(&models.Transaction{}).
		Where("customer_id = ? AND date = ?", customerID, day).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Scan(&usage).Error
	if err != nil {
		return 0, 0, err
	}
	return int(usage.Total), int(usage.Count), nil
}

// AuthorizeWithdrawal runs the ordered eligibility checks and returns the
// loaded customer and ATM rows on success. Checks short-circuit on the first
// failure. CreditOnly customers bypass the limit and balance checks entirely:
// they may withdraw any amount and go negative.
func AuthorizeWithdrawal(tx *gorm.DB, customerID, atmID uint, amount int, day datatypes.Date) (*models.Customer, *models.ATM, error) {
	var customer models.Customer
	if err := tx.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCustomerNotFound
		}
		return nil, nil, err
	}

	if customer.Status == models.CustomerStatusDisabled {
		return nil, nil, ErrAccessDenied
	}

	creditOnly := customer.Status == models.CustomerStatusCreditOnly

	if !creditOnly {
		if amount > MaxPerTransaction {
			return nil, nil, ErrPerTransactionLimit
		}

		totalToday, countToday, err := DailyUsage(tx, customer.ID, day)
		if err != nil {
			return nil, nil, err
		}
		if totalToday+amount > MaxDailyAmount {
			return nil, nil, ErrDailyAmountLimit
		}
		if countToday >= MaxDailyCount {
			return nil, nil, ErrDailyCountLimit
		}
	}

	var atm models.ATM
	if err := tx.First(&atm, atmID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrAtmNotFound
		}
		return nil, nil, err
	}

	if !creditOnly && customer.Balance < amount {
		return nil, nil, ErrInsufficientFunds
	}

	if atm.CurrentCash < amount {
		return nil, nil, ErrAtmOutOfCash
	}

	return &customer, &atm, nil
}

// SettleWithdrawal applies an authorized withdrawal on the given transaction
// handle: debits both balances, appends the Transaction row and the
// ATMDetails audit snapshot, and applies the refill policy right after the
// debit. The audit snapshot records the post-refill ATM cash, matching the
// figure returned to the caller.
func SettleWithdrawal(tx *gorm.DB, customer *models.Customer, atm *models.ATM, amount int, day datatypes.Date) error {
	now := time.Now()

	customer.Balance -= amount
	atm.CurrentCash -= amount

	if rule, ok := RefillRules[atm.Location]; ok && atm.CurrentCash < rule.Threshold {
		atm.CurrentCash += rule.Amount
	}

	if err := tx.Model(&models.Customer{}).Where("id = ?", customer.ID).
		Update("balance", customer.Balance).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.ATM{}).Where("id = ?", atm.ID).
		Update("current_cash", atm.CurrentCash).Error; err != nil {
		return err
	}

	transaction := models.Transaction{
		CustomerID:  customer.ID,
		AtmID:       atm.ID,
		Amount:      amount,
		ReferenceNo: uuid.NewString(),
		Date:        day,
		Timestamp:   now,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		return err
	}

	audit := models.ATMDetails{
		AtmID:                atm.ID,
		AtmLocation:          atm.Location,
		CustomerID:           customer.ID,
		AmountWithdrawn:      amount,
		CustomerTotalBalance: customer.Balance,
		AtmCurrentCash:       atm.CurrentCash,
		Date:                 day,
		Timestamp:            now,
	}
	return tx.Create(&audit).Error
}

// Withdraw handles POST /withdraw
func Withdraw(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedWithdraw").(*bankValidator.WithdrawRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db
	day := Today()

	withdrawMu.Lock()
	defer withdrawMu.Unlock()

	var newBalance, atmBalance int

	err := db.Transaction(func(tx *gorm.DB) error {
		customer, atm, err := AuthorizeWithdrawal(tx, reqData.CustomerID, reqData.AtmID, reqData.Amount, day)
		if err != nil {
			return err
		}
		if err := SettleWithdrawal(tx, customer, atm, reqData.Amount, day); err != nil {
			return err
		}
		newBalance = customer.Balance
		atmBalance = atm.CurrentCash
		return nil
	})

	if err != nil {
		var rejection *WithdrawalError
		if errors.As(err, &rejection) {
			return middleware.ErrorResponse(c, rejection.StatusCode, rejection.Message)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process withdrawal!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "success", "Withdrawal successful", fiber.Map{
		"new_balance": newBalance,
		"atm_balance": atmBalance,
	})
}
