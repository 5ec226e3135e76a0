package game

import "testing"

func TestPhaseCycle(t *testing.T) {
	p := PlanningPhase()

	p = p.Next()
	if !p.IsExecution() || p.Day != 1 {
		t.Fatalf("planning should lead to execution day 1, got %+v", p)
	}

	p = p.Next()
	if !p.IsReview() {
		t.Fatalf("execution should lead to review, got %+v", p)
	}

	p = p.Next()
	if !p.IsPlanning() || p.Day != 0 {
		t.Fatalf("review should lead back to planning, got %+v", p)
	}
}

func TestPhaseNextIsPure(t *testing.T) {
	p := ExecutionPhase(15)
	_ = p.Next()
	if p.Day != 15 || !p.IsExecution() {
		t.Fatalf("Next mutated receiver: %+v", p)
	}
}

func TestPhaseNames(t *testing.T) {
	tests := []struct {
		phase GamePhase
		want  string
	}{
		{PlanningPhase(), "Monthly Planning"},
		{ExecutionPhase(3), "Execution"},
		{ReviewPhase(), "Monthly Review"},
	}
	for _, tc := range tests {
		if got := tc.phase.Name(); got != tc.want {
			t.Fatalf("got %q want %q", got, tc.want)
		}
	}
}
