package game

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAccountDepositWithdraw(t *testing.T) {
	a := NewAccount("acc1", "Brokerage", AccountTaxable)

	if err := a.Deposit(dec("1000")); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := a.Withdraw(dec("400")); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if !a.Balance.Equal(dec("600")) {
		t.Fatalf("balance %s want 600", a.Balance)
	}
	if !a.TotalContributions.Equal(dec("1000")) || !a.TotalWithdrawals.Equal(dec("400")) {
		t.Fatalf("aggregates: contrib=%s withdrawn=%s", a.TotalContributions, a.TotalWithdrawals)
	}
}

func TestAccountRejectsBadAmounts(t *testing.T) {
	a := NewAccount("acc1", "Brokerage", AccountTaxable)

	if err := a.Deposit(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero deposit: got %v", err)
	}
	if err := a.Deposit(dec("-5")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative deposit: got %v", err)
	}
	if err := a.Withdraw(dec("1")); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("overdraw: got %v", err)
	}
	if !a.Balance.IsZero() {
		t.Fatalf("failed ops must not change balance, got %s", a.Balance)
	}
}

func TestAccountCapitalGain(t *testing.T) {
	a := NewAccount("acc1", "Brokerage", AccountTaxable)
	if err := a.Deposit(dec("1000")); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	a.ApplyReturn(dec("0.10"))
	if !a.Balance.Equal(dec("1100")) {
		t.Fatalf("balance after 10%% return: %s", a.Balance)
	}
	if !a.CapitalGain().Equal(dec("100")) {
		t.Fatalf("gain %s want 100", a.CapitalGain())
	}

	if err := a.Withdraw(dec("1100")); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	// gain realized through withdrawal is still visible
	if !a.CapitalGain().Equal(dec("100")) {
		t.Fatalf("gain after full withdrawal: %s", a.CapitalGain())
	}
}

func TestAccountNegativeReturnHasNoFloor(t *testing.T) {
	a := NewAccount("acc1", "Brokerage", AccountTaxable)
	if err := a.Deposit(dec("100")); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	a.ApplyReturn(dec("-1.5"))
	if a.Balance.Sign() >= 0 {
		t.Fatalf("expected negative balance, got %s", a.Balance)
	}
}

func TestRetirementAccountCarriesPlan(t *testing.T) {
	a := NewRetirementAccount("ret1", "DIP", "dip")
	if a.Kind != AccountRetirement || a.RetirementPlanID != "dip" {
		t.Fatalf("got %+v", a)
	}
	s := NewSinkingFund("sf1", "New Car", "car")
	if s.Kind != AccountSinkingFund || s.SinkingFundGoal != "car" {
		t.Fatalf("got %+v", s)
	}
}

func TestAssetDepreciateClampsAtZero(t *testing.T) {
	a := NewAsset("car1", "Skoda Octavia", AssetVehicle, dec("300000"), dec("2000"))

	a.Depreciate(dec("-0.2"))
	if !a.Value.Equal(dec("240000")) {
		t.Fatalf("value %s want 240000", a.Value)
	}
	if !a.CapitalGain().Equal(dec("-60000")) {
		t.Fatalf("gain %s want -60000", a.CapitalGain())
	}

	a.Depreciate(dec("-2"))
	if !a.Value.IsZero() {
		t.Fatalf("value should clamp at zero, got %s", a.Value)
	}
}
