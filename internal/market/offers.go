package market

import (
	"fmt"

	"github.com/shopspring/decimal"

	"snowball/internal/game"
)

// JobOffers generates the job listings currently visible to a player in the
// given market. Listings track qualifications: tiers unlock as experience
// grows, and once the player outgrows entry level those listings disappear.
// Only the Czech job market has a catalog.
func JobOffers(marketID string, career game.Career) ([]game.Job, error) {
	if _, err := Resolve(marketID); err != nil {
		return nil, err
	}
	if marketID != "czech" {
		return nil, fmt.Errorf("%w: no job catalog for %q", ErrNotImplemented, marketID)
	}

	experience := career.YearsExperience
	pool := append([]game.Job(nil), czechEntryJobs()...)
	if experience >= 1 {
		pool = append(pool, czechJuniorJobs()...)
	}
	if experience >= 3 {
		pool = append(pool, czechMidJobs()...)
	}
	if experience >= 6 {
		pool = append(pool, czechSeniorJobs()...)
	}
	if experience >= 9 {
		pool = append(pool, czechLeadJobs()...)
	}

	minLevel := game.LevelEntry
	if experience >= 2 {
		minLevel = game.LevelJunior
	}
	maxLevel := career.MaxQualifiedLevel() + 1

	offers := pool[:0]
	for _, job := range pool {
		if job.Level >= minLevel && job.Level <= maxLevel {
			offers = append(offers, job)
		}
	}
	return offers, nil
}

// HousingOffers returns the market's rental listings, cheapest first.
func HousingOffers(marketID string) ([]game.Housing, error) {
	if _, err := Resolve(marketID); err != nil {
		return nil, err
	}
	if marketID != "czech" {
		return nil, fmt.Errorf("%w: no housing catalog for %q", ErrNotImplemented, marketID)
	}
	return czechHousing(), nil
}

// FindJob looks a listing up by id across every tier of the market's
// catalog, ignoring qualification gates. Callers check Qualifies themselves.
func FindJob(marketID, jobID string) (game.Job, error) {
	if _, err := Resolve(marketID); err != nil {
		return game.Job{}, err
	}
	if marketID != "czech" {
		return game.Job{}, fmt.Errorf("%w: no job catalog for %q", ErrNotImplemented, marketID)
	}
	var pool []game.Job
	pool = append(pool, czechEntryJobs()...)
	pool = append(pool, czechJuniorJobs()...)
	pool = append(pool, czechMidJobs()...)
	pool = append(pool, czechSeniorJobs()...)
	pool = append(pool, czechLeadJobs()...)
	for _, job := range pool {
		if job.ID == jobID {
			return job, nil
		}
	}
	return game.Job{}, fmt.Errorf("%w: job %q", ErrListingNotFound, jobID)
}

// FindHousing looks a rental listing up by id.
func FindHousing(marketID, housingID string) (game.Housing, error) {
	listings, err := HousingOffers(marketID)
	if err != nil {
		return game.Housing{}, err
	}
	for _, h := range listings {
		if h.ID == housingID {
			return h, nil
		}
	}
	return game.Housing{}, fmt.Errorf("%w: housing %q", ErrListingNotFound, housingID)
}

func salary(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func czechEntryJobs() []game.Job {
	return []game.Job{
		game.NewJob("cz_retail_entry", "Sales Associate", game.FieldRetail, game.LevelEntry, salary(25000), "Local Store"),
		game.NewJob("cz_admin_entry", "Administrative Assistant", game.CareerField("Administration"), game.LevelEntry, salary(28000), "Office Corp"),
		game.NewJob("cz_tech_entry", "Junior IT Support", game.FieldTechnology, game.LevelEntry, salary(32000), "Tech Solutions s.r.o."),
	}
}

func czechJuniorJobs() []game.Job {
	return []game.Job{
		game.NewJob("cz_dev_junior", "Junior Software Developer", game.FieldTechnology, game.LevelJunior, salary(45000), "CodeCraft Prague"),
		game.NewJob("cz_accountant_junior", "Junior Accountant", game.FieldFinance, game.LevelJunior, salary(38000), "Finance Group"),
		game.NewJob("cz_teacher_junior", "Elementary School Teacher", game.FieldEducation, game.LevelJunior, salary(35000), "Praha Elementary"),
	}
}

func czechMidJobs() []game.Job {
	return []game.Job{
		game.NewJob("cz_dev_mid", "Software Developer", game.FieldTechnology, game.LevelMid, salary(65000), "TechCorp Prague"),
		game.NewJob("cz_accountant_mid", "Accountant", game.FieldFinance, game.LevelMid, salary(52000), "KPMG Czech"),
		game.NewJob("cz_manager_mid", "Team Manager", game.FieldManufacturing, game.LevelMid, salary(58000), "Škoda Auto"),
		game.NewJob("cz_nurse_mid", "Registered Nurse", game.FieldHealthcare, game.LevelMid, salary(48000), "Motol Hospital"),
	}
}

func czechSeniorJobs() []game.Job {
	return []game.Job{
		game.NewJob("cz_dev_senior", "Senior Software Engineer", game.FieldTechnology, game.LevelSenior, salary(90000), "Avast Software"),
		game.NewJob("cz_accountant_senior", "Senior Financial Analyst", game.FieldFinance, game.LevelSenior, salary(75000), "Česká spořitelna"),
		game.NewJob("cz_doctor_senior", "Specialist Physician", game.FieldHealthcare, game.LevelSenior, salary(85000), "General Hospital Prague"),
	}
}

func czechLeadJobs() []game.Job {
	return []game.Job{
		game.NewJob("cz_arch_lead", "Lead Software Architect", game.FieldTechnology, game.LevelLead, salary(120000), "O2 Czech Republic"),
		game.NewJob("cz_cfo_lead", "Finance Director", game.FieldFinance, game.LevelLead, salary(110000), "Česká pojišťovna"),
		game.NewJob("cz_director_lead", "Operations Director", game.FieldManufacturing, game.LevelLead, salary(100000), "ČEZ Group"),
	}
}

func czechHousing() []game.Housing {
	rent := func(id string, t game.HousingType, q game.LocationQuality, address string, monthlyRent, utilities int64) game.Housing {
		return game.Housing{
			ID:               id,
			Type:             t,
			Location:         q,
			Address:          address,
			MonthlyRent:      decimal.NewFromInt(monthlyRent),
			MonthlyUtilities: decimal.NewFromInt(utilities),
		}
	}
	return []game.Housing{
		rent("cz_shared_poor_1", game.HousingShared, game.LocationPoor, "Shared room, Černý Most", 4000, 1000),
		rent("cz_shared_avg_1", game.HousingShared, game.LocationAverage, "Shared apartment, Háje", 6000, 1200),
		rent("cz_studio_poor_1", game.HousingStudio, game.LocationPoor, "Small studio, Hostivař", 7000, 2000),
		rent("cz_studio_avg_1", game.HousingStudio, game.LocationAverage, "Studio, Chodov", 10000, 2500),
		rent("cz_1bed_avg_1", game.HousingOneBedroom, game.LocationAverage, "1+kk, Nové Butovice", 13000, 3000),
		rent("cz_1bed_good_1", game.HousingOneBedroom, game.LocationGood, "1+1, Karlín", 18000, 3500),
		rent("cz_2bed_good_1", game.HousingTwoBedroom, game.LocationGood, "2+kk, Smíchov", 22000, 4000),
		rent("cz_2bed_prem_1", game.HousingTwoBedroom, game.LocationPremium, "2+1, Vinohrady", 28000, 4500),
		rent("cz_3bed_prem_1", game.HousingThreeBedroom, game.LocationPremium, "3+1, Nové Město", 35000, 5000),
		rent("cz_house_prem_1", game.HousingHouse, game.LocationPremium, "House, Dejvice", 50000, 7000),
	}
}
