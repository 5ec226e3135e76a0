package game

import "github.com/shopspring/decimal"

// FinancialState aggregates everything the player owns and owes. Derived
// metrics are always recomputed from the collections; nothing is cached.
type FinancialState struct {
	Cash          decimal.Decimal                      `json:"cash"`
	Accounts      []Account                            `json:"accounts"`
	Assets        []Asset                              `json:"assets"`
	IncomeSources []Income                             `json:"income_sources"`
	Expenses      []Expense                            `json:"expenses"`
	Budget        map[ExpenseCategory]BudgetAllocation `json:"budget"`
	Liabilities   decimal.Decimal                      `json:"liabilities"`
}

func NewFinancialState() FinancialState {
	return FinancialState{
		Budget: make(map[ExpenseCategory]BudgetAllocation),
	}
}

// TotalAssets is cash + account balances + asset values.
func (f FinancialState) TotalAssets() decimal.Decimal {
	total := f.Cash
	for _, a := range f.Accounts {
		total = total.Add(a.Balance)
	}
	for _, a := range f.Assets {
		total = total.Add(a.Value)
	}
	return total
}

func (f FinancialState) NetWorth() decimal.Decimal {
	return f.TotalAssets().Sub(f.Liabilities)
}

// MonthlyGrossIncome sums active income sources before taxes.
func (f FinancialState) MonthlyGrossIncome() decimal.Decimal {
	total := decimal.Zero
	for _, i := range f.IncomeSources {
		if i.Active {
			total = total.Add(i.GrossMonthly)
		}
	}
	return total
}

func (f FinancialState) MonthlyExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range f.Expenses {
		if e.Active {
			total = total.Add(e.MonthlyAmount)
		}
	}
	return total
}

func (f FinancialState) MonthlyEssentialExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range f.Expenses {
		if e.Active && e.Category.IsEssential() {
			total = total.Add(e.MonthlyAmount)
		}
	}
	return total
}

// SavingsRate returns the percentage of net (after-tax) income left after
// expenses. Zero when net income is not positive.
func (f FinancialState) SavingsRate(netIncome decimal.Decimal) decimal.Decimal {
	if netIncome.Sign() <= 0 {
		return decimal.Zero
	}
	saved := netIncome.Sub(f.MonthlyExpenses())
	return saved.Div(netIncome).Mul(decimal.NewFromInt(100))
}

func (f *FinancialState) AddAccount(a Account) {
	f.Accounts = append(f.Accounts, a)
}

// Account returns a pointer into the accounts slice, or nil when absent.
func (f *FinancialState) Account(id string) *Account {
	for i := range f.Accounts {
		if f.Accounts[i].ID == id {
			return &f.Accounts[i]
		}
	}
	return nil
}

func (f *FinancialState) AddAsset(a Asset) {
	f.Assets = append(f.Assets, a)
}

func (f *FinancialState) AddIncome(i Income) {
	f.IncomeSources = append(f.IncomeSources, i)
}

func (f *FinancialState) AddExpense(e Expense) {
	f.Expenses = append(f.Expenses, e)
}

// SetBudget replaces the allocation for a category. Spent starts at zero.
func (f *FinancialState) SetBudget(category ExpenseCategory, allocated decimal.Decimal) {
	if f.Budget == nil {
		f.Budget = make(map[ExpenseCategory]BudgetAllocation)
	}
	f.Budget[category] = NewBudgetAllocation(category, allocated)
}

// SpendFromBudget records spending against a category's allocation.
func (f *FinancialState) SpendFromBudget(category ExpenseCategory, amount decimal.Decimal) error {
	alloc, ok := f.Budget[category]
	if !ok {
		alloc = NewBudgetAllocation(category, decimal.Zero)
	}
	if err := alloc.Spend(amount); err != nil {
		return err
	}
	f.Budget[category] = alloc
	return nil
}

// ResetMonthlyBudget zeroes every allocation's spent amount.
func (f *FinancialState) ResetMonthlyBudget() {
	for category, alloc := range f.Budget {
		alloc.ResetMonth()
		f.Budget[category] = alloc
	}
}

// FireNumber is the net worth target for financial independence:
// 25x annual expenses.
func (f FinancialState) FireNumber() decimal.Decimal {
	return f.MonthlyExpenses().Mul(decimal.NewFromInt(12)).Mul(FireExpenseMultiple)
}

// FireProgress is net worth as a percentage of the FIRE number, zero when
// the FIRE number itself is zero.
func (f FinancialState) FireProgress() decimal.Decimal {
	target := f.FireNumber()
	if target.IsZero() {
		return decimal.Zero
	}
	return f.NetWorth().Div(target).Mul(decimal.NewFromInt(100))
}

func (f FinancialState) IsFire() bool {
	return f.NetWorth().GreaterThanOrEqual(f.FireNumber())
}

// HasEmergencyFund reports whether emergency-fund accounts together cover
// three months of expenses.
func (f FinancialState) HasEmergencyFund() bool {
	balance := decimal.Zero
	for _, a := range f.Accounts {
		if a.Kind == AccountEmergencyFund {
			balance = balance.Add(a.Balance)
		}
	}
	target := f.MonthlyExpenses().Mul(decimal.NewFromInt(EmergencyFundMonths))
	return balance.GreaterThanOrEqual(target)
}

// Clone deep-copies the financial state so a snapshot can be mutated without
// touching the original.
func (f FinancialState) Clone() FinancialState {
	out := f
	out.Accounts = append([]Account(nil), f.Accounts...)
	out.Assets = append([]Asset(nil), f.Assets...)
	out.IncomeSources = append([]Income(nil), f.IncomeSources...)
	out.Expenses = append([]Expense(nil), f.Expenses...)
	out.Budget = make(map[ExpenseCategory]BudgetAllocation, len(f.Budget))
	for category, alloc := range f.Budget {
		out.Budget[category] = alloc
	}
	return out
}
