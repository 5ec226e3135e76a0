package game

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNetWorth(t *testing.T) {
	f := NewFinancialState()
	f.Cash = dec("5000")

	acc := NewAccount("acc1", "Brokerage", AccountTaxable)
	if err := acc.Deposit(dec("20000")); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	f.AddAccount(acc)
	f.AddAsset(NewAsset("car1", "Car", AssetVehicle, dec("100000"), decimal.Zero))
	f.Liabilities = dec("30000")

	if !f.TotalAssets().Equal(dec("125000")) {
		t.Fatalf("total assets %s want 125000", f.TotalAssets())
	}
	if !f.NetWorth().Equal(dec("95000")) {
		t.Fatalf("net worth %s want 95000", f.NetWorth())
	}
}

func TestMonthlyAggregatesSkipInactive(t *testing.T) {
	f := NewFinancialState()
	f.AddIncome(NewIncome("job_1", "Job", IncomeEmployment, dec("40000")))

	side := NewIncome("gig_1", "Gig", IncomeFreelance, dec("5000"))
	side.Deactivate()
	f.AddIncome(side)

	f.AddExpense(NewExpense("housing_1", "Rent", CategoryEssential, dec("15000")))
	f.AddExpense(NewExpense("fun_1", "Eating Out", CategoryLifestyle, dec("3000")))

	old := NewExpense("gym_1", "Gym", CategoryHealth, dec("800"))
	old.Deactivate()
	f.AddExpense(old)

	if !f.MonthlyGrossIncome().Equal(dec("40000")) {
		t.Fatalf("gross %s want 40000", f.MonthlyGrossIncome())
	}
	if !f.MonthlyExpenses().Equal(dec("18000")) {
		t.Fatalf("expenses %s want 18000", f.MonthlyExpenses())
	}
	if !f.MonthlyEssentialExpenses().Equal(dec("15000")) {
		t.Fatalf("essential %s want 15000", f.MonthlyEssentialExpenses())
	}
}

func TestSavingsRate(t *testing.T) {
	f := NewFinancialState()
	f.AddExpense(NewExpense("rent", "Rent", CategoryEssential, dec("15000")))

	if got := f.SavingsRate(dec("30000")); !got.Equal(dec("50")) {
		t.Fatalf("rate %s want 50", got)
	}
	if got := f.SavingsRate(decimal.Zero); !got.IsZero() {
		t.Fatalf("rate with zero income should be zero, got %s", got)
	}
	if got := f.SavingsRate(dec("-100")); !got.IsZero() {
		t.Fatalf("rate with negative income should be zero, got %s", got)
	}
}

func TestBudgetSpendAndReset(t *testing.T) {
	f := NewFinancialState()
	f.SetBudget(CategoryLifestyle, dec("3000"))

	if err := f.SpendFromBudget(CategoryLifestyle, dec("3500")); err != nil {
		t.Fatalf("spend: %v", err)
	}
	alloc := f.Budget[CategoryLifestyle]
	if !alloc.IsOverBudget() || !alloc.Overspend().Equal(dec("500")) {
		t.Fatalf("overspend %s want 500", alloc.Overspend())
	}
	if !alloc.Remaining().Equal(dec("-500")) {
		t.Fatalf("remaining %s want -500", alloc.Remaining())
	}

	if err := f.SpendFromBudget(CategoryLifestyle, decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero spend: got %v", err)
	}

	// spending against an unallocated category creates a zero allocation
	if err := f.SpendFromBudget(CategoryHealth, dec("200")); err != nil {
		t.Fatalf("spend unallocated: %v", err)
	}
	if !f.Budget[CategoryHealth].IsOverBudget() {
		t.Fatalf("spending with no allocation should be over budget")
	}

	f.ResetMonthlyBudget()
	for _, c := range ExpenseCategories() {
		if alloc, ok := f.Budget[c]; ok && !alloc.Spent.IsZero() {
			t.Fatalf("category %s spent %s after reset", c, alloc.Spent)
		}
	}
	if !f.Budget[CategoryLifestyle].Allocated.Equal(dec("3000")) {
		t.Fatalf("reset must keep allocations")
	}
}

func TestFireNumber(t *testing.T) {
	f := NewFinancialState()
	f.AddExpense(NewExpense("rent", "Rent", CategoryEssential, dec("20000")))

	if !f.FireNumber().Equal(dec("6000000")) {
		t.Fatalf("fire number %s want 6000000", f.FireNumber())
	}

	f.Cash = dec("1500000")
	if !f.FireProgress().Equal(dec("25")) {
		t.Fatalf("progress %s want 25", f.FireProgress())
	}
	if f.IsFire() {
		t.Fatalf("25%% progress is not FIRE")
	}

	f.Cash = dec("6000000")
	if !f.IsFire() {
		t.Fatalf("net worth at target should be FIRE")
	}
}

func TestHasEmergencyFund(t *testing.T) {
	f := NewFinancialState()
	f.AddExpense(NewExpense("rent", "Rent", CategoryEssential, dec("10000")))

	ef := NewAccount("ef1", "Emergency Fund", AccountEmergencyFund)
	if err := ef.Deposit(dec("29999")); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	f.AddAccount(ef)
	if f.HasEmergencyFund() {
		t.Fatalf("29999 does not cover three months of 10000")
	}

	if err := f.Account("ef1").Deposit(dec("1")); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if !f.HasEmergencyFund() {
		t.Fatalf("30000 covers three months of 10000")
	}
}

func TestFinancialStateCloneIsDeep(t *testing.T) {
	f := NewFinancialState()
	f.AddAccount(NewAccount("acc1", "Brokerage", AccountTaxable))
	f.SetBudget(CategoryEssential, dec("5000"))

	clone := f.Clone()
	if err := clone.Account("acc1").Deposit(dec("100")); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	clone.SetBudget(CategoryEssential, dec("9999"))

	if !f.Accounts[0].Balance.IsZero() {
		t.Fatalf("clone mutation leaked into original account")
	}
	if !f.Budget[CategoryEssential].Allocated.Equal(dec("5000")) {
		t.Fatalf("clone mutation leaked into original budget")
	}
}
