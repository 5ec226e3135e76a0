package game

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMetersClamp(t *testing.T) {
	p := NewPlayerStats(28, "Jana")

	p.AdjustHappiness(1000)
	if p.Happiness != 100 {
		t.Fatalf("happiness %d want 100", p.Happiness)
	}
	p.AdjustHappiness(-1000)
	if p.Happiness != 0 {
		t.Fatalf("happiness %d want 0", p.Happiness)
	}

	p.AdjustBurnout(-1000)
	if p.Burnout != 0 {
		t.Fatalf("burnout %d want 0", p.Burnout)
	}
	p.AdjustBurnout(1000)
	if p.Burnout != 100 {
		t.Fatalf("burnout %d want 100", p.Burnout)
	}
}

func TestFinancialPeaceScore(t *testing.T) {
	p := NewPlayerStats(28, "Jana")
	// defaults: happiness 70, burnout 20
	if got := p.FinancialPeaceScore(); got != 75 {
		t.Fatalf("score %d want 75", got)
	}
}

func TestRevengeSpendingRisk(t *testing.T) {
	tests := []struct {
		happiness int
		burnout   int
		want      bool
	}{
		{70, 20, false},
		{39, 20, true},
		{40, 20, false},
		{70, 71, true},
		{70, 70, false},
	}
	for _, tc := range tests {
		p := PlayerStats{Happiness: tc.happiness, Burnout: tc.burnout}
		if got := p.IsRevengeSpendingRisk(); got != tc.want {
			t.Fatalf("happiness=%d burnout=%d got %v want %v", tc.happiness, tc.burnout, got, tc.want)
		}
	}
}

func TestHumanCapitalMultiplier(t *testing.T) {
	p := NewPlayerStats(28, "Jana")

	if !p.HumanCapitalIncomeMultiplier().Equal(decimal.NewFromInt(1)) {
		t.Fatalf("baseline multiplier %s want 1", p.HumanCapitalIncomeMultiplier())
	}

	if err := p.InvestHumanCapital(dec("50000")); err != nil {
		t.Fatalf("invest: %v", err)
	}
	if !p.HumanCapitalIncomeMultiplier().Equal(dec("1.05")) {
		t.Fatalf("multiplier %s want 1.05", p.HumanCapitalIncomeMultiplier())
	}

	if err := p.InvestHumanCapital(dec("150000")); err != nil {
		t.Fatalf("invest: %v", err)
	}
	if !p.HumanCapitalIncomeMultiplier().Equal(dec("1.2")) {
		t.Fatalf("multiplier %s want 1.2", p.HumanCapitalIncomeMultiplier())
	}

	if err := p.InvestHumanCapital(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero invest: got %v", err)
	}
}
