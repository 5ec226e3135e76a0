package game

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	// DaysPerMonth is the simplified month length used by the execution sim.
	DaysPerMonth = 30

	// EmergencyFundMonths is how many months of expenses the emergency fund
	// must cover before it counts as complete.
	EmergencyFundMonths = 3
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
	ErrInvalidPhase      = errors.New("operation not valid in current phase")
	ErrAccountNotFound   = errors.New("account not found")
	ErrMalformedSave     = errors.New("malformed save data")
)

var (
	// MovingFee is the flat moving-expenses part of a housing change on top
	// of the two-month security deposit.
	MovingFee = decimal.NewFromInt(1500)

	// FireExpenseMultiple is the 25x annual expenses target for financial
	// independence.
	FireExpenseMultiple = decimal.NewFromInt(25)
)
