package models

import "time"

// GoalPriority represents the priority of a savings goal
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// GoalStatus represents the lifecycle status of a savings goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// Goal represents a savings goal
type Goal struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	TargetAmount  float64      `json:"target_amount"`
	CurrentAmount float64      `json:"current_amount"`
	Deadline      time.Time    `json:"deadline"`
	Notes         string       `json:"notes,omitempty"`
	Priority      GoalPriority `json:"priority"`
	Status        GoalStatus   `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Progress returns the completion percentage, capped at 100. It is computed
// on read and never stored. A non-positive target yields 0.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	ratio := g.CurrentAmount / g.TargetAmount
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 100
}

// GoalUpdate holds the optional fields of a partial goal update. Nil fields
// are left unchanged; ID and CreatedAt are never updatable.
type GoalUpdate struct {
	Name          *string       `json:"name"`
	TargetAmount  *float64      `json:"target_amount"`
	CurrentAmount *float64      `json:"current_amount"`
	Deadline      *time.Time    `json:"deadline"`
	Notes         *string       `json:"notes"`
	Priority      *GoalPriority `json:"priority"`
	Status        *GoalStatus   `json:"status"`
}
