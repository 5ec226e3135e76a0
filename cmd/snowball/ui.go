package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"snowball/internal/game"
	"snowball/internal/market"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
)

func printSuccess(msg string) {
	success.Println(msg)
}

func printWarn(msg string) {
	warn.Println(msg)
}

func promptRequired(label string) (string, error) {
	for {
		fmt.Printf("%s: ", label)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(text)
		if text != "" {
			return text, nil
		}
		printWarn(label + " is required.")
	}
}

func promptOptional(label string) (string, error) {
	fmt.Printf("%s: ", label)
	text, err := stdinReader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func promptChoice(label string, options []string, defaultValue string) (string, error) {
	normalized := make(map[string]struct{}, len(options))
	for _, opt := range options {
		normalized[strings.ToLower(strings.TrimSpace(opt))] = struct{}{}
	}
	for {
		fmt.Printf("%s (%s) [%s]: ", label, strings.Join(options, "/"), defaultValue)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.ToLower(strings.TrimSpace(text))
		if text == "" {
			text = strings.ToLower(strings.TrimSpace(defaultValue))
		}
		if _, ok := normalized[text]; ok {
			return text, nil
		}
		printWarn("Invalid option. Please pick one of the listed values.")
	}
}

func promptInt(label string, min int) (int, error) {
	for {
		text, err := promptRequired(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			printWarn("Enter a whole number.")
			continue
		}
		if v < min {
			printWarn(fmt.Sprintf("Value must be >= %d", min))
			continue
		}
		return v, nil
	}
}

func decodeState(raw map[string]any) (game.GameState, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return game.GameState{}, err
	}
	return game.DecodeGameState(data)
}

func currencySymbol(marketID string) string {
	p, err := market.Resolve(marketID)
	if err != nil {
		return ""
	}
	return p.Currency().Symbol()
}

func money(v decimal.Decimal, symbol string) string {
	s := v.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	if symbol != "" {
		out += " " + symbol
	}
	return out
}

func renderMarkets(markets []map[string]any) {
	accent.Println("\n== MARKETS ==")
	for _, m := range markets {
		fmt.Printf("%-8v %-18v currency=%v retirement=%v\n", m["id"], m["name"], m["currency"], m["retirement_age"])
	}
}

func renderSaves(saves []map[string]any) {
	if len(saves) == 0 {
		printWarn("No saved games.")
		return
	}
	accent.Println("\n== SAVES ==")
	for _, s := range saves {
		fmt.Printf("%-38v %-8v %v\n", s["save_id"], s["market_id"], s["player_name"])
	}
}

func renderStatus(state game.GameState) {
	symbol := currencySymbol(state.MarketID)

	accent.Printf("\n== %s | %s %d ==\n", state.Player.Name, state.Time.Month.Name(), state.Time.Year)
	phase := state.Phase.Name()
	if state.Phase.IsExecution() {
		phase = fmt.Sprintf("%s (day %d/%d)", phase, state.Phase.Day, game.DaysPerMonth)
	}
	fmt.Printf("Phase:         %s\n", phase)
	fmt.Printf("Age:           %d\n", state.Player.Age)
	fmt.Printf("Cash:          %s\n", money(state.Finances.Cash, symbol))
	fmt.Printf("Net Worth:     %s\n", money(state.Finances.NetWorth(), symbol))
	fmt.Printf("Gross Income:  %s/mo\n", money(state.Finances.MonthlyGrossIncome(), symbol))
	fmt.Printf("Expenses:      %s/mo\n", money(state.Finances.MonthlyExpenses(), symbol))

	if state.Career.CurrentJob != nil {
		job := state.Career.CurrentJob
		fmt.Printf("Job:           %s at %s (%s, %s/mo)\n",
			job.Title, job.Company, job.Level.Name(), money(job.MonthlySalary, symbol))
	} else {
		warn.Println("Job:           unemployed")
	}
	fmt.Printf("Experience:    %d years\n", state.Career.YearsExperience)

	if state.Housing != nil {
		fmt.Printf("Housing:       %s, %s (%s/mo, %d months)\n",
			state.Housing.Type.Name(), state.Housing.Address,
			money(state.Housing.TotalMonthlyCost(), symbol), state.MonthsAtHousing)
	} else {
		warn.Println("Housing:       none")
	}

	fmt.Printf("Happiness:     %d/100  Burnout: %d/100  Peace: %d/100\n",
		state.Player.Happiness, state.Player.Burnout, state.Player.FinancialPeaceScore())
	if state.Player.IsRevengeSpendingRisk() {
		danger.Println("At risk of revenge spending!")
	}

	if len(state.Finances.Accounts) > 0 {
		accent.Println("\nAccounts")
		for _, a := range state.Finances.Accounts {
			fmt.Printf("  %-38s %-14s %s\n", a.ID, a.Kind, money(a.Balance, symbol))
		}
	}

	progress := state.Finances.FireProgress()
	if !progress.IsZero() {
		fmt.Printf("\nFIRE progress: %s%% of %s\n",
			progress.StringFixed(1), money(state.Finances.FireNumber(), symbol))
	}
}

func renderBudget(state game.GameState) {
	symbol := currencySymbol(state.MarketID)
	accent.Println("\n== BUDGET ==")
	for _, category := range game.ExpenseCategories() {
		alloc, ok := state.Finances.Budget[category]
		if !ok {
			continue
		}
		line := fmt.Sprintf("%-16s allocated %12s  spent %12s",
			category, money(alloc.Allocated, symbol), money(alloc.Spent, symbol))
		if alloc.IsOverBudget() {
			danger.Printf("%s  over by %s\n", line, money(alloc.Overspend(), symbol))
		} else {
			fmt.Println(line)
		}
	}
}

func renderJobOffers(offers []map[string]any) {
	if len(offers) == 0 {
		printWarn("No openings right now.")
		return
	}
	accent.Println("\n== JOB OFFERS ==")
	for _, o := range offers {
		fmt.Printf("%-22v %-32v %-14v %v/mo at %v\n",
			o["id"], o["title"], o["field"], o["monthly_salary"], o["company"])
	}
}

func renderHousingOffers(offers []map[string]any) {
	if len(offers) == 0 {
		printWarn("No listings right now.")
		return
	}
	accent.Println("\n== HOUSING LISTINGS ==")
	for _, o := range offers {
		fmt.Printf("%-18v %-28v rent %v + utilities %v\n",
			o["id"], o["address"], o["monthly_rent"], o["monthly_utilities"])
	}
}
