package game

// Stage identifies which part of the monthly cycle the game is in.
type Stage string

const (
	// StagePlanning pauses time while the player allocates budget and makes
	// lifestyle decisions.
	StagePlanning Stage = "planning"
	// StageExecution flows time through days 1-30 of the month.
	StageExecution Stage = "execution"
	// StageReview summarizes the finished month.
	StageReview Stage = "review"
)

// GamePhase is the phase variant. Day is only meaningful during execution.
type GamePhase struct {
	Stage Stage `json:"stage"`
	Day   int   `json:"day,omitempty"`
}

func PlanningPhase() GamePhase {
	return GamePhase{Stage: StagePlanning}
}

func ExecutionPhase(day int) GamePhase {
	return GamePhase{Stage: StageExecution, Day: day}
}

func ReviewPhase() GamePhase {
	return GamePhase{Stage: StageReview}
}

func (p GamePhase) IsPlanning() bool  { return p.Stage == StagePlanning }
func (p GamePhase) IsExecution() bool { return p.Stage == StageExecution }
func (p GamePhase) IsReview() bool    { return p.Stage == StageReview }

// Next returns the phase that follows in the monthly cycle:
// Planning -> Execution{day 1} -> Review -> Planning.
func (p GamePhase) Next() GamePhase {
	switch p.Stage {
	case StagePlanning:
		return ExecutionPhase(1)
	case StageExecution:
		return ReviewPhase()
	default:
		return PlanningPhase()
	}
}

func (p GamePhase) Name() string {
	switch p.Stage {
	case StagePlanning:
		return "Monthly Planning"
	case StageExecution:
		return "Execution"
	default:
		return "Monthly Review"
	}
}
