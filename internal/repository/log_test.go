package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRepository_CreateAndList_RoundTrip(t *testing.T) {
	dbx := newTestDB(t)
	users := NewUserRepository(dbx)
	goals := NewGoalRepository(dbx)
	logs := NewLogRepository(dbx)

	user := newTestUser(t, users, "alice")
	goal := newTestGoal(t, goals, user.ID, "Learn Go", time.Now())

	created := newTestLog(t, logs, goal.ID, "2025-06-15", 3.5, "worked on generics")
	newTestLog(t, logs, goal.ID, "2025-06-17", 1, "")

	got, err := logs.Logs(goal.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest date first
	assert.Equal(t, "2025-06-17", got[0].Date)
	assert.Equal(t, "2025-06-15", got[1].Date)

	assert.Equal(t, created.ID, got[1].ID)
	assert.Equal(t, created.GoalID, got[1].GoalID)
	assert.InDelta(t, 3.5, got[1].HoursSpent, 1e-9)
	assert.Equal(t, "worked on generics", got[1].Notes)
}

func TestLogRepository_Logs_NullNotesReadBackEmpty(t *testing.T) {
	dbx := newTestDB(t)
	users := NewUserRepository(dbx)
	goals := NewGoalRepository(dbx)
	logs := NewLogRepository(dbx)

	user := newTestUser(t, users, "alice")
	goal := newTestGoal(t, goals, user.ID, "Learn Go", time.Now())

	// Insert with NULL notes directly, bypassing the repository
	_, err := dbx.Exec(
		`INSERT INTO logs (id, goal_id, date, hours_spent, notes, created_at) VALUES ($1, $2, $3, $4, NULL, $5)`,
		uuid.New().String(), goal.ID, "2025-06-15", 2.0, time.Now(),
	)
	require.NoError(t, err)

	got, err := logs.Logs(goal.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Notes)
}

func TestLogRepository_ByID_TransitiveOwnership(t *testing.T) {
	dbx := newTestDB(t)
	users := NewUserRepository(dbx)
	goals := NewGoalRepository(dbx)
	logs := NewLogRepository(dbx)

	alice := newTestUser(t, users, "alice")
	bob := newTestUser(t, users, "bob")
	goal := newTestGoal(t, goals, alice.ID, "Learn Go", time.Now())
	log := newTestLog(t, logs, goal.ID, "2025-06-15", 2, "")

	got, err := logs.ByID(alice.ID, log.ID)
	require.NoError(t, err)
	assert.Equal(t, log.ID, got.ID)

	// Bob reaches through his own id and finds nothing
	_, err = logs.ByID(bob.ID, log.ID)
	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestLogRepository_DailyTotals(t *testing.T) {
	dbx := newTestDB(t)
	users := NewUserRepository(dbx)
	goals := NewGoalRepository(dbx)
	logs := NewLogRepository(dbx)

	alice := newTestUser(t, users, "alice")
	bob := newTestUser(t, users, "bob")
	goalA := newTestGoal(t, goals, alice.ID, "Learn Go", time.Now())
	goalB := newTestGoal(t, goals, alice.ID, "Run", time.Now())
	goalBob := newTestGoal(t, goals, bob.ID, "Paint", time.Now())

	// Two goals on the same day sum together
	newTestLog(t, logs, goalA.ID, "2025-06-10", 2, "")
	newTestLog(t, logs, goalB.ID, "2025-06-10", 1.5, "")
	newTestLog(t, logs, goalA.ID, "2025-06-12", 4, "")

	// Before the window and other users are excluded
	newTestLog(t, logs, goalA.ID, "2025-06-01", 9, "")
	newTestLog(t, logs, goalBob.ID, "2025-06-11", 5, "")

	totals, err := logs.DailyTotals(alice.ID, "2025-06-05")
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, "2025-06-10", totals[0].Date)
	assert.InDelta(t, 3.5, totals[0].Hours, 1e-9)
	assert.Equal(t, "2025-06-12", totals[1].Date)
	assert.InDelta(t, 4.0, totals[1].Hours, 1e-9)
}
