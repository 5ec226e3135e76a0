package market

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"snowball/internal/game"
)

// UsaMarket is registered so saves can reference it, but its tax rules are
// not built yet. Every fiscal calculation fails with ErrNotImplemented.
type UsaMarket struct{}

func (UsaMarket) Currency() game.Currency { return game.CurrencyUSD }

func (UsaMarket) CalculateIncomeTax(decimal.Decimal) (game.TaxBreakdown, error) {
	return game.TaxBreakdown{}, fmt.Errorf("%w: usa", ErrNotImplemented)
}

func (UsaMarket) AvailableAccounts() []game.AccountType {
	return nil
}

func (UsaMarket) CapitalGainsTax(time.Duration, decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Zero, fmt.Errorf("%w: usa", ErrNotImplemented)
}

// RetirementAge is the Social Security full retirement age.
func (UsaMarket) RetirementAge() int { return 67 }
func (UsaMarket) MarketID() string   { return "usa" }
func (UsaMarket) MarketName() string { return "United States" }
