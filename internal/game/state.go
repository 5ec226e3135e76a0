package game

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const housingExpensePrefix = "housing_"

var startingEssentialBudget = decimal.NewFromInt(3500)

// GameState is the complete simulation snapshot. Operations either fully
// succeed or leave the state untouched; callers that need replacement
// semantics work on a Clone.
type GameState struct {
	SaveID   string      `json:"save_id"`
	MarketID string      `json:"market_id"`
	Time     GameTime    `json:"time"`
	Phase    GamePhase   `json:"phase"`
	Player   PlayerStats `json:"player"`
	Career   Career      `json:"career"`

	Housing         *Housing `json:"housing,omitempty"`
	MonthsAtHousing int      `json:"months_at_housing"`

	Finances  FinancialState `json:"finances"`
	StartYear int            `json:"start_year"`
}

// NewGameState starts a fresh game in January of startYear, in Planning.
func NewGameState(saveID, marketID, playerName string, playerAge, startYear int) (GameState, error) {
	t, err := NewGameTime(startYear, 1)
	if err != nil {
		return GameState{}, err
	}
	return GameState{
		SaveID:    saveID,
		MarketID:  marketID,
		Time:      t,
		Phase:     PlanningPhase(),
		Player:    NewPlayerStats(playerAge, playerName),
		Career:    NewCareer(),
		Finances:  NewFinancialState(),
		StartYear: startYear,
	}, nil
}

// AcceptJob takes a job and keeps the income sources in sync: any previous
// job income is removed and replaced with the new salary. A first job also
// seeds starting cash (half a month's salary) and a survival-level essential
// budget.
func (g *GameState) AcceptJob(job Job) {
	if !g.Career.IsEmployed() {
		g.Finances.Cash = job.MonthlySalary.Div(decimal.NewFromInt(2))
		g.Finances.SetBudget(CategoryEssential, startingEssentialBudget)
	}

	g.Career.AcceptJob(job)

	kept := g.Finances.IncomeSources[:0]
	for _, inc := range g.Finances.IncomeSources {
		if !strings.HasPrefix(inc.ID, "job_") {
			kept = append(kept, inc)
		}
	}
	g.Finances.IncomeSources = append(kept, NewIncome("job_"+job.ID, job.Title, IncomeEmployment, job.MonthlySalary))
}

// QuitJob ends employment and deactivates the matching job income.
func (g *GameState) QuitJob() {
	g.Career.QuitJob()
	for i := range g.Finances.IncomeSources {
		if strings.HasPrefix(g.Finances.IncomeSources[i].ID, "job_") {
			g.Finances.IncomeSources[i].Deactivate()
		}
	}
}

// ChangeHousing moves the player. The moving cost (two months of the new
// rent plus the flat fee) must be covered by cash or nothing changes.
// Afterwards exactly one housing-tagged essential expense exists, equal to
// the new total monthly housing cost.
func (g *GameState) ChangeHousing(newHousing Housing) error {
	movingCost := newHousing.MovingCost()
	if g.Finances.Cash.LessThan(movingCost) {
		return fmt.Errorf("%w: moving costs %s, cash %s",
			ErrInsufficientFunds, movingCost.StringFixed(0), g.Finances.Cash.StringFixed(0))
	}

	g.Finances.Cash = g.Finances.Cash.Sub(movingCost)

	kept := g.Finances.Expenses[:0]
	for _, e := range g.Finances.Expenses {
		if !strings.HasPrefix(e.ID, housingExpensePrefix) {
			kept = append(kept, e)
		}
	}
	g.Finances.Expenses = append(kept, NewExpense(
		housingExpensePrefix+newHousing.ID,
		"Housing: "+newHousing.Address,
		CategoryEssential,
		newHousing.TotalMonthlyCost(),
	))

	g.Housing = &newHousing
	g.MonthsAtHousing = 0
	return nil
}

// AdvancePhase applies the Planning -> Execution -> Review -> Planning
// cycle. Only the Review -> Planning edge performs end-of-month bookkeeping:
// the calendar moves to the next month, budgets reset, career tenure ticks,
// the housing counter advances, and a January rollover ages the player.
func (g *GameState) AdvancePhase() {
	prev := g.Phase
	g.Phase = g.Phase.Next()

	if prev.IsReview() && g.Phase.IsPlanning() {
		g.Time.AdvanceMonth()
		g.Finances.ResetMonthlyBudget()
		g.Career.AdvanceMonth()
		if g.Housing != nil {
			g.MonthsAtHousing++
		}
		if g.Time.Month == 1 {
			g.Player.AgeOneYear()
		}
	}
}

// AdvanceExecutionDay moves the execution sim forward one day. On day 30 it
// runs the monthly settlement and transitions to Review instead. Outside
// Execution it fails and the state is unchanged.
func (g *GameState) AdvanceExecutionDay(profile MarketProfile) error {
	if !g.Phase.IsExecution() {
		return fmt.Errorf("%w: can only advance day during execution", ErrInvalidPhase)
	}
	if g.Phase.Day < DaysPerMonth {
		g.Phase.Day++
		g.Time.AdvanceDay()
		return nil
	}
	if err := g.settleMonth(profile); err != nil {
		return err
	}
	g.Phase = ReviewPhase()
	return nil
}

// settleMonth converts gross income and expenses into the month's net cash
// flow. The market profile is only consulted when there is income to tax;
// a profile failure aborts settlement rather than assuming a tax value.
func (g *GameState) settleMonth(profile MarketProfile) error {
	gross := g.Finances.MonthlyGrossIncome()

	netIncome := decimal.Zero
	if gross.Sign() > 0 {
		breakdown, err := profile.CalculateIncomeTax(gross)
		if err != nil {
			return fmt.Errorf("income tax for market %q: %w", g.MarketID, err)
		}
		netIncome = gross.Sub(breakdown.Total)
	}

	netCashFlow := netIncome.Sub(g.Finances.MonthlyExpenses())
	g.Finances.Cash = g.Finances.Cash.Add(netCashFlow)
	return nil
}

// DepositToAccount moves cash into an account.
func (g *GameState) DepositToAccount(accountID string, amount decimal.Decimal) error {
	account := g.Finances.Account(accountID)
	if account == nil {
		return ErrAccountNotFound
	}
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if g.Finances.Cash.LessThan(amount) {
		return ErrInsufficientFunds
	}
	if err := account.Deposit(amount); err != nil {
		return err
	}
	g.Finances.Cash = g.Finances.Cash.Sub(amount)
	return nil
}

// WithdrawFromAccount moves an account balance back into cash.
func (g *GameState) WithdrawFromAccount(accountID string, amount decimal.Decimal) error {
	account := g.Finances.Account(accountID)
	if account == nil {
		return ErrAccountNotFound
	}
	if err := account.Withdraw(amount); err != nil {
		return err
	}
	g.Finances.Cash = g.Finances.Cash.Add(amount)
	return nil
}

// InvestHumanCapital spends cash on education/skills and records it on the
// player.
func (g *GameState) InvestHumanCapital(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if g.Finances.Cash.LessThan(amount) {
		return ErrInsufficientFunds
	}
	if err := g.Player.InvestHumanCapital(amount); err != nil {
		return err
	}
	g.Finances.Cash = g.Finances.Cash.Sub(amount)
	return nil
}

func (g GameState) MonthsElapsed() int {
	return g.Time.TotalMonths(g.StartYear)
}

func (g GameState) YearsElapsed() int {
	return g.Time.Year - g.StartYear
}

// Clone deep-copies the snapshot.
func (g GameState) Clone() GameState {
	out := g
	out.Career = g.Career.Clone()
	out.Finances = g.Finances.Clone()
	if g.Housing != nil {
		h := *g.Housing
		out.Housing = &h
	}
	return out
}

// Encode serializes the snapshot. The round trip through Decode is lossless:
// decimals keep exact values and variant discriminants survive.
func (g GameState) Encode() ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

// DecodeGameState parses and validates a saved snapshot. Malformed data is
// rejected outright; no partially populated state is returned.
func DecodeGameState(data []byte) (GameState, error) {
	var g GameState
	if err := json.Unmarshal(data, &g); err != nil {
		return GameState{}, fmt.Errorf("%w: %v", ErrMalformedSave, err)
	}
	if err := g.validate(); err != nil {
		return GameState{}, err
	}
	if g.Finances.Budget == nil {
		g.Finances.Budget = make(map[ExpenseCategory]BudgetAllocation)
	}
	return g, nil
}

func (g GameState) validate() error {
	if strings.TrimSpace(g.SaveID) == "" {
		return fmt.Errorf("%w: missing save id", ErrMalformedSave)
	}
	if strings.TrimSpace(g.MarketID) == "" {
		return fmt.Errorf("%w: missing market id", ErrMalformedSave)
	}
	if g.Time.Month < 1 || g.Time.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrMalformedSave, g.Time.Month)
	}
	if g.Time.Day < 1 || g.Time.Day > DaysPerMonth {
		return fmt.Errorf("%w: day %d out of range", ErrMalformedSave, g.Time.Day)
	}
	switch g.Phase.Stage {
	case StagePlanning, StageReview:
	case StageExecution:
		if g.Phase.Day < 1 || g.Phase.Day > DaysPerMonth {
			return fmt.Errorf("%w: execution day %d out of range", ErrMalformedSave, g.Phase.Day)
		}
	default:
		return fmt.Errorf("%w: unknown phase %q", ErrMalformedSave, g.Phase.Stage)
	}
	return nil
}
