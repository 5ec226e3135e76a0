package market

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"snowball/internal/game"
)

// UkMarket is a placeholder like UsaMarket.
type UkMarket struct{}

func (UkMarket) Currency() game.Currency { return game.CurrencyGBP }

func (UkMarket) CalculateIncomeTax(decimal.Decimal) (game.TaxBreakdown, error) {
	return game.TaxBreakdown{}, fmt.Errorf("%w: uk", ErrNotImplemented)
}

func (UkMarket) AvailableAccounts() []game.AccountType {
	return nil
}

func (UkMarket) CapitalGainsTax(time.Duration, decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Zero, fmt.Errorf("%w: uk", ErrNotImplemented)
}

// RetirementAge is the UK state pension age.
func (UkMarket) RetirementAge() int { return 66 }
func (UkMarket) MarketID() string   { return "uk" }
func (UkMarket) MarketName() string { return "United Kingdom" }
