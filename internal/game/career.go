package game

import "github.com/shopspring/decimal"

// JobLevel is the seniority ladder. Ordering matters: higher levels have
// higher values and stricter experience thresholds.
type JobLevel int

const (
	LevelEntry JobLevel = iota
	LevelJunior
	LevelMid
	LevelSenior
	LevelLead
)

// MinExperience returns the years of experience the level requires.
func (l JobLevel) MinExperience() int {
	switch l {
	case LevelJunior:
		return 2
	case LevelMid:
		return 4
	case LevelSenior:
		return 7
	case LevelLead:
		return 10
	default:
		return 0
	}
}

func (l JobLevel) Name() string {
	switch l {
	case LevelEntry:
		return "Entry Level"
	case LevelJunior:
		return "Junior"
	case LevelMid:
		return "Mid-Level"
	case LevelSenior:
		return "Senior"
	case LevelLead:
		return "Lead"
	default:
		return "Unknown"
	}
}

// JobLevels returns the ladder from Entry to Lead.
func JobLevels() []JobLevel {
	return []JobLevel{LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelLead}
}

// CareerField is an open set: the predeclared values cover the common
// industries, anything else is free text.
type CareerField string

const (
	FieldTechnology    CareerField = "Technology"
	FieldFinance       CareerField = "Finance"
	FieldHealthcare    CareerField = "Healthcare"
	FieldEducation     CareerField = "Education"
	FieldRetail        CareerField = "Retail"
	FieldManufacturing CareerField = "Manufacturing"
)

func CareerFields() []CareerField {
	return []CareerField{
		FieldTechnology,
		FieldFinance,
		FieldHealthcare,
		FieldEducation,
		FieldRetail,
		FieldManufacturing,
	}
}

// Job is a position, either held or offered.
type Job struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Field              CareerField     `json:"field"`
	Level              JobLevel        `json:"level"`
	MonthlySalary      decimal.Decimal `json:"monthly_salary"`
	RequiredExperience int             `json:"required_experience"`
	Company            string          `json:"company,omitempty"`
}

func NewJob(id, title string, field CareerField, level JobLevel, monthlySalary decimal.Decimal, company string) Job {
	return Job{
		ID:                 id,
		Title:              title,
		Field:              field,
		Level:              level,
		MonthlySalary:      monthlySalary,
		RequiredExperience: level.MinExperience(),
		Company:            company,
	}
}

// Qualifies reports whether the given experience meets the job's threshold.
func (j Job) Qualifies(yearsExperience int) bool {
	return yearsExperience >= j.RequiredExperience
}

// Career tracks the player's employment. JobHistory is append-only and
// chronological, oldest first.
type Career struct {
	CurrentJob      *Job  `json:"current_job,omitempty"`
	YearsExperience int   `json:"years_experience"`
	MonthsInCurrent int   `json:"months_in_current_job"`
	JobHistory      []Job `json:"job_history"`
}

func NewCareer() Career {
	return Career{}
}

// AcceptJob makes the job current, pushing any held job into history.
func (c *Career) AcceptJob(job Job) {
	if c.CurrentJob != nil {
		c.JobHistory = append(c.JobHistory, *c.CurrentJob)
	}
	c.CurrentJob = &job
	c.MonthsInCurrent = 0
}

// QuitJob pushes the current job into history and leaves the player
// unemployed.
func (c *Career) QuitJob() {
	if c.CurrentJob != nil {
		c.JobHistory = append(c.JobHistory, *c.CurrentJob)
		c.CurrentJob = nil
	}
	c.MonthsInCurrent = 0
}

// AdvanceMonth ticks tenure; every 12 months on the job earns a year of
// experience.
func (c *Career) AdvanceMonth() {
	if c.CurrentJob == nil {
		return
	}
	c.MonthsInCurrent++
	if c.MonthsInCurrent%12 == 0 {
		c.YearsExperience++
	}
}

func (c Career) IsEmployed() bool {
	return c.CurrentJob != nil
}

func (c Career) MonthlySalary() decimal.Decimal {
	if c.CurrentJob == nil {
		return decimal.Zero
	}
	return c.CurrentJob.MonthlySalary
}

// MaxQualifiedLevel is the highest level whose threshold the player's
// experience meets; Entry when none do.
func (c Career) MaxQualifiedLevel() JobLevel {
	levels := JobLevels()
	for i := len(levels) - 1; i >= 0; i-- {
		if c.YearsExperience >= levels[i].MinExperience() {
			return levels[i]
		}
	}
	return LevelEntry
}

// Clone deep-copies the career.
func (c Career) Clone() Career {
	out := c
	if c.CurrentJob != nil {
		job := *c.CurrentJob
		out.CurrentJob = &job
	}
	out.JobHistory = append([]Job(nil), c.JobHistory...)
	return out
}
