package model

import (
	"time"
)

const (
	GoalStatusActive = "active"
)

type Goal struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Name       string    `db:"name"`
	TargetDate *string   `db:"target_date"` // Nullable, YYYY-MM-DD
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

// GoalWithTotal is a Goal annotated with the sum of hours logged against it.
// A goal with no logs carries a total of 0, never a missing value.
type GoalWithTotal struct {
	Goal
	TotalHours float64 `db:"total_hours"`
}
