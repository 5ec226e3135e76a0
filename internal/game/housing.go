package game

import "github.com/shopspring/decimal"

// HousingType is the size/kind of a dwelling.
type HousingType string

const (
	HousingShared       HousingType = "shared"
	HousingStudio       HousingType = "studio"
	HousingOneBedroom   HousingType = "one_bedroom"
	HousingTwoBedroom   HousingType = "two_bedroom"
	HousingThreeBedroom HousingType = "three_bedroom"
	HousingHouse        HousingType = "house"
)

func (t HousingType) Name() string {
	switch t {
	case HousingShared:
		return "Shared Apartment"
	case HousingStudio:
		return "Studio"
	case HousingOneBedroom:
		return "1 Bedroom"
	case HousingTwoBedroom:
		return "2 Bedroom"
	case HousingThreeBedroom:
		return "3 Bedroom"
	case HousingHouse:
		return "House"
	default:
		return string(t)
	}
}

// LocationQuality affects price and a monthly happiness modifier.
type LocationQuality string

const (
	LocationPoor    LocationQuality = "poor"
	LocationAverage LocationQuality = "average"
	LocationGood    LocationQuality = "good"
	LocationPremium LocationQuality = "premium"
)

func (q LocationQuality) Name() string {
	switch q {
	case LocationPoor:
		return "Outskirts"
	case LocationAverage:
		return "Suburbs"
	case LocationGood:
		return "Good Area"
	case LocationPremium:
		return "City Center"
	default:
		return string(q)
	}
}

// HappinessImpact is the monthly happiness delta of living at this quality.
func (q LocationQuality) HappinessImpact() int {
	switch q {
	case LocationPoor:
		return -2
	case LocationGood:
		return 1
	case LocationPremium:
		return 2
	default:
		return 0
	}
}

// Housing is a dwelling the player rents.
type Housing struct {
	ID               string          `json:"id"`
	Type             HousingType     `json:"type"`
	Location         LocationQuality `json:"location"`
	Address          string          `json:"address"`
	MonthlyRent      decimal.Decimal `json:"monthly_rent"`
	MonthlyUtilities decimal.Decimal `json:"monthly_utilities"`
}

func (h Housing) TotalMonthlyCost() decimal.Decimal {
	return h.MonthlyRent.Add(h.MonthlyUtilities)
}

// MovingCost is a two-month security deposit plus the flat moving fee.
func (h Housing) MovingCost() decimal.Decimal {
	return h.MonthlyRent.Mul(decimal.NewFromInt(2)).Add(MovingFee)
}
