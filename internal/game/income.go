package game

import "github.com/shopspring/decimal"

// IncomeKind classifies an income source.
type IncomeKind string

const (
	IncomeEmployment IncomeKind = "employment"
	IncomeFreelance  IncomeKind = "freelance"
	IncomePassive    IncomeKind = "passive"
	IncomeOneTime    IncomeKind = "one_time"
)

// Income is a recurring source of gross monthly income.
type Income struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Kind         IncomeKind      `json:"kind"`
	GrossMonthly decimal.Decimal `json:"gross_monthly"`
	Active       bool            `json:"active"`
}

func NewIncome(id, name string, kind IncomeKind, grossMonthly decimal.Decimal) Income {
	return Income{
		ID:           id,
		Name:         name,
		Kind:         kind,
		GrossMonthly: grossMonthly,
		Active:       true,
	}
}

func (i *Income) Activate()   { i.Active = true }
func (i *Income) Deactivate() { i.Active = false }

// AdjustAmount replaces the gross monthly amount (raises, rate changes).
func (i *Income) AdjustAmount(amount decimal.Decimal) {
	i.GrossMonthly = amount
}

// AnnualGross returns twelve months of gross income, zero when inactive.
func (i Income) AnnualGross() decimal.Decimal {
	if !i.Active {
		return decimal.Zero
	}
	return i.GrossMonthly.Mul(decimal.NewFromInt(12))
}
