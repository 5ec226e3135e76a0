package game

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the ISO-style code of a market's currency.
type Currency string

const (
	CurrencyCZK Currency = "CZK"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) Symbol() string {
	switch c {
	case CurrencyCZK:
		return "Kč"
	case CurrencyUSD:
		return "$"
	case CurrencyGBP:
		return "£"
	case CurrencyEUR:
		return "€"
	default:
		return string(c)
	}
}

// MinorUnits returns the number of decimal places of the currency's minor
// unit.
func (c Currency) MinorUnits() int {
	return 2
}

// TaxBreakdown is the result of a monthly income-tax calculation.
// Total is always the sum of the three components.
type TaxBreakdown struct {
	IncomeTax       decimal.Decimal `json:"income_tax"`
	SocialInsurance decimal.Decimal `json:"social_insurance"`
	HealthInsurance decimal.Decimal `json:"health_insurance"`
	Total           decimal.Decimal `json:"total"`
}

// AccountType describes a tax-advantaged account offered by a market.
type AccountType struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	AnnualLimit   *decimal.Decimal `json:"annual_limit,omitempty"`
	EmployerMatch bool             `json:"employer_match"`
}

// MarketProfile encapsulates the country-specific fiscal rules the engine
// needs during settlement. One implementation exists per supported market;
// settlement never falls back to a default when a market is missing.
type MarketProfile interface {
	Currency() Currency

	// CalculateIncomeTax computes the tax breakdown for a gross monthly
	// income. Markets whose rules are not implemented return an error;
	// callers must not treat that as zero tax.
	CalculateIncomeTax(grossMonthly decimal.Decimal) (TaxBreakdown, error)

	// AvailableAccounts lists the market's tax-advantaged account types.
	AvailableAccounts() []AccountType

	// CapitalGainsTax computes tax owed on a realized gain given how long
	// the position was held. Holding-period exemptions are market-specific.
	CapitalGainsTax(holdingPeriod time.Duration, gain decimal.Decimal) (decimal.Decimal, error)

	RetirementAge() int
	MarketID() string
	MarketName() string
}
