package game

import "testing"

func TestJobLevelThresholds(t *testing.T) {
	tests := []struct {
		level JobLevel
		want  int
	}{
		{LevelEntry, 0},
		{LevelJunior, 2},
		{LevelMid, 4},
		{LevelSenior, 7},
		{LevelLead, 10},
	}
	for _, tc := range tests {
		if got := tc.level.MinExperience(); got != tc.want {
			t.Fatalf("%s: got %d want %d", tc.level.Name(), got, tc.want)
		}
	}
}

func TestJobQualifies(t *testing.T) {
	job := NewJob("j1", "Developer", FieldTechnology, LevelMid, dec("60000"), "Acme")
	if job.RequiredExperience != 4 {
		t.Fatalf("required experience %d want 4", job.RequiredExperience)
	}
	if job.Qualifies(3) {
		t.Fatalf("3 years should not qualify for mid-level")
	}
	if !job.Qualifies(4) {
		t.Fatalf("4 years should qualify for mid-level")
	}
}

func TestCareerExperienceMilestone(t *testing.T) {
	c := NewCareer()
	c.AcceptJob(NewJob("j1", "Junior Dev", FieldTechnology, LevelEntry, dec("35000"), "Acme"))

	for i := 0; i < 11; i++ {
		c.AdvanceMonth()
	}
	if c.YearsExperience != 0 {
		t.Fatalf("11 months should not grant a year, got %d", c.YearsExperience)
	}
	c.AdvanceMonth()
	if c.YearsExperience != 1 || c.MonthsInCurrent != 12 {
		t.Fatalf("after 12 months: years=%d months=%d", c.YearsExperience, c.MonthsInCurrent)
	}

	for i := 0; i < 12; i++ {
		c.AdvanceMonth()
	}
	if c.YearsExperience != 2 {
		t.Fatalf("after 24 months: years=%d", c.YearsExperience)
	}
}

func TestCareerUnemployedMonthsDoNotCount(t *testing.T) {
	c := NewCareer()
	for i := 0; i < 24; i++ {
		c.AdvanceMonth()
	}
	if c.YearsExperience != 0 || c.MonthsInCurrent != 0 {
		t.Fatalf("unemployed time counted: %+v", c)
	}
}

func TestCareerJobHistory(t *testing.T) {
	c := NewCareer()
	first := NewJob("j1", "Junior Dev", FieldTechnology, LevelEntry, dec("35000"), "Acme")
	second := NewJob("j2", "Developer", FieldTechnology, LevelJunior, dec("50000"), "Globex")

	c.AcceptJob(first)
	c.AdvanceMonth()
	c.AcceptJob(second)

	if len(c.JobHistory) != 1 || c.JobHistory[0].ID != "j1" {
		t.Fatalf("history after switch: %+v", c.JobHistory)
	}
	if c.MonthsInCurrent != 0 {
		t.Fatalf("tenure should reset on switch, got %d", c.MonthsInCurrent)
	}

	c.QuitJob()
	if c.IsEmployed() {
		t.Fatalf("still employed after quitting")
	}
	if len(c.JobHistory) != 2 || c.JobHistory[1].ID != "j2" {
		t.Fatalf("history after quit: %+v", c.JobHistory)
	}
	if !c.MonthlySalary().IsZero() {
		t.Fatalf("unemployed salary should be zero")
	}
}

func TestMaxQualifiedLevel(t *testing.T) {
	tests := []struct {
		years int
		want  JobLevel
	}{
		{0, LevelEntry},
		{1, LevelEntry},
		{2, LevelJunior},
		{5, LevelMid},
		{8, LevelSenior},
		{15, LevelLead},
	}
	for _, tc := range tests {
		c := Career{YearsExperience: tc.years}
		if got := c.MaxQualifiedLevel(); got != tc.want {
			t.Fatalf("years=%d got %s want %s", tc.years, got.Name(), tc.want.Name())
		}
	}
}

func TestCareerCloneIsDeep(t *testing.T) {
	c := NewCareer()
	c.AcceptJob(NewJob("j1", "Dev", FieldTechnology, LevelEntry, dec("35000"), "Acme"))

	clone := c.Clone()
	clone.CurrentJob.Title = "Changed"
	clone.JobHistory = append(clone.JobHistory, *clone.CurrentJob)

	if c.CurrentJob.Title != "Dev" {
		t.Fatalf("clone mutation leaked into original job")
	}
	if len(c.JobHistory) != 0 {
		t.Fatalf("clone mutation leaked into original history")
	}
}
