package model

import (
	"time"
)

type Log struct {
	ID         string    `db:"id"`
	GoalID     string    `db:"goal_id"`
	Date       string    `db:"date"` // Calendar date, YYYY-MM-DD
	HoursSpent float64   `db:"hours_spent"`
	Notes      string    `db:"notes"` // NULL in storage reads back as ""
	CreatedAt  time.Time `db:"created_at"`
}

// DailyTotal is one point of the weekly summary: a date with at least one
// log and the hours summed across all of a user's goals on that date.
type DailyTotal struct {
	Date  string  `db:"date"`
	Hours float64 `db:"total_hours"`
}
