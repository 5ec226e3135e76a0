package game

import "fmt"

// Month is a calendar month in the 1-12 range.
type Month int

func NewMonth(m int) (Month, error) {
	if m < 1 || m > 12 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidMonth, m)
	}
	return Month(m), nil
}

// Next returns the following month and whether the year rolled over.
func (m Month) Next() (Month, bool) {
	if m == 12 {
		return 1, true
	}
	return m + 1, false
}

func (m Month) Name() string {
	names := [...]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	if m < 1 || m > 12 {
		return "Unknown"
	}
	return names[m-1]
}

// GameTime tracks the simulation calendar. Months are a fixed 30 days.
type GameTime struct {
	Month Month `json:"month"`
	Year  int   `json:"year"`
	Day   int   `json:"day"`
}

func NewGameTime(year, month int) (GameTime, error) {
	m, err := NewMonth(month)
	if err != nil {
		return GameTime{}, err
	}
	return GameTime{Month: m, Year: year, Day: 1}, nil
}

// AdvanceMonth moves to the first day of the next month, rolling the year
// when December wraps.
func (t *GameTime) AdvanceMonth() {
	next, yearChanged := t.Month.Next()
	t.Month = next
	if yearChanged {
		t.Year++
	}
	t.Day = 1
}

func (t *GameTime) AdvanceDay() {
	if t.Day < DaysPerMonth {
		t.Day++
		return
	}
	t.AdvanceMonth()
}

// TotalMonths returns months elapsed since the given start year.
func (t GameTime) TotalMonths(startYear int) int {
	return (t.Year-startYear)*12 + int(t.Month)
}
