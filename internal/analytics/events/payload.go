package events

type WorkoutStatus string

const (
	WorkoutStatusCompleted WorkoutStatus = "completed"
	WorkoutStatusScheduled WorkoutStatus = "scheduled"
)

type Workout struct {
	Name      string
	Status    WorkoutStatus
	GroupID   string
	Exercises []Exercise
}

type Exercise struct {
	Name string
	Sets []ExerciseSet
}

// ExerciseSet holds the performed weight (falling back to the prescribed
// one at ingestion). Sets with non-positive weight or reps are kept but
// never contribute to volume or strength metrics.
type ExerciseSet struct {
	Weight float64
	Reps   int
}

func (s ExerciseSet) HasVolume() bool {
	return s.Weight > 0 && s.Reps > 0
}

func (s ExerciseSet) Volume() float64 {
	if !s.HasVolume() {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

type Tokens struct {
	Input  int `json:"input,omitempty"`
	Output int `json:"output,omitempty"`
	Total  int `json:"total"`
}

// CostEntry is the payload of a cost-log event.
type CostEntry struct {
	Type        string
	Title       string
	Description string
	Source      string
	Model       *string
	Cost        *float64
	Tokens      *Tokens
}

// CostAmount returns the cost, with a missing cost counting as 0.
func (c CostEntry) CostAmount() float64 {
	if c.Cost == nil {
		return 0
	}
	return *c.Cost
}

// TokenCount returns tokens.total, with missing tokens counting as 0.
func (c CostEntry) TokenCount() int {
	if c.Tokens == nil {
		return 0
	}
	return c.Tokens.Total
}

// ModelName returns the model, or "" when absent.
func (c CostEntry) ModelName() string {
	if c.Model == nil {
		return ""
	}
	return *c.Model
}

// Normalized resolves empty optional fields to their explicit defaults:
// an empty model becomes nil.
func (c CostEntry) Normalized() CostEntry {
	if c.Model != nil && *c.Model == "" {
		c.Model = nil
	}
	return c
}
