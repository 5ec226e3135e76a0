package game

import "github.com/shopspring/decimal"

// ExpenseCategory classifies a recurring expense. The set is closed; budget
// allocations are keyed by it.
type ExpenseCategory string

const (
	CategoryEssential      ExpenseCategory = "essential"
	CategoryLifestyle      ExpenseCategory = "lifestyle"
	CategoryHealth         ExpenseCategory = "health"
	CategoryTransportation ExpenseCategory = "transportation"
	CategoryEducation      ExpenseCategory = "education"
	CategoryOther          ExpenseCategory = "other"
)

// ExpenseCategories returns all categories in canonical order. Anything that
// iterates the budget map should use this order.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		CategoryEssential,
		CategoryLifestyle,
		CategoryHealth,
		CategoryTransportation,
		CategoryEducation,
		CategoryOther,
	}
}

func (c ExpenseCategory) IsEssential() bool {
	return c == CategoryEssential
}

// HappinessMultiplier weights how much spending in this category lifts
// happiness.
func (c ExpenseCategory) HappinessMultiplier() float64 {
	switch c {
	case CategoryEssential:
		return 0.1
	case CategoryLifestyle:
		return 1.0
	case CategoryHealth:
		return 0.5
	case CategoryTransportation:
		return 0.2
	case CategoryEducation:
		return 0.3
	default:
		return 0.2
	}
}

// Expense is a recurring monthly expense.
type Expense struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      ExpenseCategory `json:"category"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	Active        bool            `json:"active"`
}

func NewExpense(id, name string, category ExpenseCategory, monthlyAmount decimal.Decimal) Expense {
	return Expense{
		ID:            id,
		Name:          name,
		Category:      category,
		MonthlyAmount: monthlyAmount,
		Active:        true,
	}
}

func (e *Expense) Activate()   { e.Active = true }
func (e *Expense) Deactivate() { e.Active = false }

func (e *Expense) AdjustAmount(amount decimal.Decimal) {
	e.MonthlyAmount = amount
}

// AnnualCost returns twelve months of the expense, zero when inactive.
func (e Expense) AnnualCost() decimal.Decimal {
	if !e.Active {
		return decimal.Zero
	}
	return e.MonthlyAmount.Mul(decimal.NewFromInt(12))
}

// BudgetAllocation tracks planned versus actual spending for one category
// within the current month.
type BudgetAllocation struct {
	Category  ExpenseCategory `json:"category"`
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
}

func NewBudgetAllocation(category ExpenseCategory, allocated decimal.Decimal) BudgetAllocation {
	return BudgetAllocation{Category: category, Allocated: allocated}
}

// Spend records spending against the allocation. Overspending is allowed and
// tracked, not rejected.
func (b *BudgetAllocation) Spend(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	b.Spent = b.Spent.Add(amount)
	return nil
}

func (b BudgetAllocation) Remaining() decimal.Decimal {
	return b.Allocated.Sub(b.Spent)
}

func (b BudgetAllocation) IsOverBudget() bool {
	return b.Spent.GreaterThan(b.Allocated)
}

func (b BudgetAllocation) Overspend() decimal.Decimal {
	if !b.IsOverBudget() {
		return decimal.Zero
	}
	return b.Spent.Sub(b.Allocated)
}

// ResetMonth zeroes the spent amount at the start of a new month.
func (b *BudgetAllocation) ResetMonth() {
	b.Spent = decimal.Zero
}
