package game

import "github.com/shopspring/decimal"

var humanCapitalUnit = decimal.NewFromInt(100000)

// PlayerStats tracks the player's demographics and behavioral meters.
// Happiness and burnout are clamped to [0,100].
type PlayerStats struct {
	Age  int    `json:"age"`
	Name string `json:"name,omitempty"`

	Happiness int `json:"happiness"`
	Burnout   int `json:"burnout"`

	// FrugalityEnabled prevents automatic lifestyle creep when income rises.
	FrugalityEnabled bool `json:"frugality_enabled"`

	// HumanCapitalInvested is the cumulative spend on education and skills.
	HumanCapitalInvested decimal.Decimal `json:"human_capital_invested"`
}

func NewPlayerStats(age int, name string) PlayerStats {
	return PlayerStats{
		Age:       age,
		Name:      name,
		Happiness: 70,
		Burnout:   20,
	}
}

func clampMeter(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (p *PlayerStats) AdjustHappiness(delta int) {
	p.Happiness = clampMeter(p.Happiness + delta)
}

func (p *PlayerStats) AdjustBurnout(delta int) {
	p.Burnout = clampMeter(p.Burnout + delta)
}

// FinancialPeaceScore averages happiness with inverted burnout.
func (p PlayerStats) FinancialPeaceScore() int {
	return (p.Happiness + (100 - p.Burnout)) / 2
}

// IsRevengeSpendingRisk flags the states where the player is likely to blow
// the budget on impulse spending.
func (p PlayerStats) IsRevengeSpendingRisk() bool {
	return p.Happiness < 40 || p.Burnout > 70
}

func (p *PlayerStats) AgeOneYear() {
	p.Age++
}

func (p *PlayerStats) InvestHumanCapital(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	p.HumanCapitalInvested = p.HumanCapitalInvested.Add(amount)
	return nil
}

// HumanCapitalIncomeMultiplier is a linear model: every 100,000 invested
// raises earning potential by 10%.
func (p PlayerStats) HumanCapitalIncomeMultiplier() decimal.Decimal {
	units := p.HumanCapitalInvested.Div(humanCapitalUnit)
	return decimal.NewFromInt(1).Add(units.Mul(decimal.RequireFromString("0.10")))
}
