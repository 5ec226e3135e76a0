package market

import (
	"time"

	"github.com/shopspring/decimal"

	"snowball/internal/game"
)

// timeTestPeriod is the Czech "časový test": capital gains on securities
// held three years or longer are tax exempt.
const timeTestPeriod = 3 * 365 * 24 * time.Hour

var (
	czIncomeTaxRate       = decimal.RequireFromString("0.15")
	czSocialInsuranceRate = decimal.RequireFromString("0.071")
	czHealthInsuranceRate = decimal.RequireFromString("0.045")
	czCapitalGainsRate    = decimal.RequireFromString("0.15")

	czDipLimit         = decimal.NewFromInt(48000)
	czThirdPillarLimit = decimal.NewFromInt(24000)
	czStavebniLimit    = decimal.NewFromInt(20000)
)

// CzechMarket implements the Czech Republic's fiscal rules with the flat
// 15% income-tax bracket and employee-side insurance rates.
type CzechMarket struct{}

func (CzechMarket) Currency() game.Currency { return game.CurrencyCZK }

// CalculateIncomeTax applies the employee-side rates to gross monthly
// income. The 23% solidarity bracket above roughly 1.87M CZK annually is
// not modeled.
func (CzechMarket) CalculateIncomeTax(grossMonthly decimal.Decimal) (game.TaxBreakdown, error) {
	incomeTax := grossMonthly.Mul(czIncomeTaxRate)
	social := grossMonthly.Mul(czSocialInsuranceRate)
	health := grossMonthly.Mul(czHealthInsuranceRate)
	return game.TaxBreakdown{
		IncomeTax:       incomeTax,
		SocialInsurance: social,
		HealthInsurance: health,
		Total:           incomeTax.Add(social).Add(health),
	}, nil
}

func (CzechMarket) AvailableAccounts() []game.AccountType {
	return []game.AccountType{
		{
			ID:            "dip",
			Name:          "DIP (Dlouhodobý investiční produkt)",
			AnnualLimit:   &czDipLimit,
			EmployerMatch: true,
		},
		{
			ID:            "third_pillar",
			Name:          "III. pilíř (Doplňkové penzijní spoření)",
			AnnualLimit:   &czThirdPillarLimit,
			EmployerMatch: false,
		},
		{
			ID:            "stavebni_sporeni",
			Name:          "Stavební spoření",
			AnnualLimit:   &czStavebniLimit,
			EmployerMatch: false,
		},
	}
}

// CapitalGainsTax is zero after the three-year time test, otherwise the
// gain is taxed as ordinary income.
func (CzechMarket) CapitalGainsTax(holdingPeriod time.Duration, gain decimal.Decimal) (decimal.Decimal, error) {
	if holdingPeriod >= timeTestPeriod {
		return decimal.Zero, nil
	}
	return gain.Mul(czCapitalGainsRate), nil
}

func (CzechMarket) RetirementAge() int { return 65 }
func (CzechMarket) MarketID() string   { return "czech" }
func (CzechMarket) MarketName() string { return "Czech Republic" }
