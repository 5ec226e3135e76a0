package game

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind is the discriminant for the account variants. Retirement
// accounts additionally carry the market-specific plan id, sinking funds
// carry their goal label.
type AccountKind string

const (
	AccountRetirement    AccountKind = "retirement"
	AccountTaxable       AccountKind = "taxable"
	AccountEmergencyFund AccountKind = "emergency_fund"
	AccountSinkingFund   AccountKind = "sinking_fund"
)

// Account is an investment or savings account.
type Account struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Kind AccountKind `json:"kind"`

	// RetirementPlanID is set only for retirement accounts and references
	// a market AccountType id (e.g. "dip", "401k").
	RetirementPlanID string `json:"retirement_plan_id,omitempty"`
	// SinkingFundGoal is set only for sinking funds.
	SinkingFundGoal string `json:"sinking_fund_goal,omitempty"`

	Balance            decimal.Decimal `json:"balance"`
	OpenedAt           time.Time       `json:"opened_at"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalWithdrawals   decimal.Decimal `json:"total_withdrawals"`
}

func NewAccount(id, name string, kind AccountKind) Account {
	return Account{
		ID:       id,
		Name:     name,
		Kind:     kind,
		OpenedAt: time.Now().UTC(),
	}
}

func NewRetirementAccount(id, name, planID string) Account {
	a := NewAccount(id, name, AccountRetirement)
	a.RetirementPlanID = planID
	return a
}

func NewSinkingFund(id, name, goal string) Account {
	a := NewAccount(id, name, AccountSinkingFund)
	a.SinkingFundGoal = goal
	return a
}

// Deposit adds a strictly positive amount to the balance and to the
// cumulative contributions.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	a.TotalContributions = a.TotalContributions.Add(amount)
	return nil
}

// Withdraw removes a strictly positive amount; it never lets the balance go
// negative.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	a.TotalWithdrawals = a.TotalWithdrawals.Add(amount)
	return nil
}

// HoldingPeriod returns how long the account has been open.
func (a *Account) HoldingPeriod() time.Duration {
	d := time.Since(a.OpenedAt)
	if d < 0 {
		return 0
	}
	return d
}

// CapitalGain is balance minus contributions plus withdrawals, i.e. the
// growth attributable to market returns.
func (a *Account) CapitalGain() decimal.Decimal {
	return a.Balance.Sub(a.TotalContributions).Add(a.TotalWithdrawals)
}

// ApplyReturn scales the balance by (1 + rate). A severe downturn can take
// the balance negative; no floor is applied here.
func (a *Account) ApplyReturn(rate decimal.Decimal) {
	a.Balance = a.Balance.Mul(decimal.NewFromInt(1).Add(rate))
}

// AssetCategory classifies a physical asset.
type AssetCategory string

const (
	AssetRealEstate AssetCategory = "real_estate"
	AssetVehicle    AssetCategory = "vehicle"
	AssetOther      AssetCategory = "other"
)

// Asset is a physical or other non-account holding.
type Asset struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      AssetCategory   `json:"category"`
	Value         decimal.Decimal `json:"value"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	AcquiredAt    time.Time       `json:"acquired_at"`
	MonthlyCost   decimal.Decimal `json:"monthly_cost"`
}

func NewAsset(id, name string, category AssetCategory, purchasePrice, monthlyCost decimal.Decimal) Asset {
	return Asset{
		ID:            id,
		Name:          name,
		Category:      category,
		Value:         purchasePrice,
		PurchasePrice: purchasePrice,
		AcquiredAt:    time.Now().UTC(),
		MonthlyCost:   monthlyCost,
	}
}

func (a *Asset) CapitalGain() decimal.Decimal {
	return a.Value.Sub(a.PurchasePrice)
}

// Depreciate scales the value by (1 + rate); rate is negative for
// depreciation. Value is clamped at zero.
func (a *Asset) Depreciate(rate decimal.Decimal) {
	a.Value = a.Value.Mul(decimal.NewFromInt(1).Add(rate))
	if a.Value.Sign() < 0 {
		a.Value = decimal.Zero
	}
}
