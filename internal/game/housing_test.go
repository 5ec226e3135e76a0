package game

import "testing"

func TestHousingCosts(t *testing.T) {
	h := Housing{
		ID:               "h1",
		Type:             HousingOneBedroom,
		Location:         LocationGood,
		Address:          "Vinohrady",
		MonthlyRent:      dec("18000"),
		MonthlyUtilities: dec("3500"),
	}

	if !h.TotalMonthlyCost().Equal(dec("21500")) {
		t.Fatalf("total monthly cost %s want 21500", h.TotalMonthlyCost())
	}
	// two months of rent as deposit plus the flat fee
	if !h.MovingCost().Equal(dec("37500")) {
		t.Fatalf("moving cost %s want 37500", h.MovingCost())
	}
}

func TestLocationHappinessImpact(t *testing.T) {
	tests := []struct {
		quality LocationQuality
		want    int
	}{
		{LocationPoor, -2},
		{LocationAverage, 0},
		{LocationGood, 1},
		{LocationPremium, 2},
	}
	for _, tc := range tests {
		if got := tc.quality.HappinessImpact(); got != tc.want {
			t.Fatalf("%s: got %d want %d", tc.quality, got, tc.want)
		}
	}
}
