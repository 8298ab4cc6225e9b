package service

import (
	"testing"
	"time"

	"github.com/goalhours/goalhours/internal/model"
	"github.com/goalhours/goalhours/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, env *testEnv, username string) *model.User {
	t.Helper()
	user, err := env.auth.Register(username, username+"@example.com", "correct horse battery")
	require.NoError(t, err)
	return user
}

func TestLogService_Create_HoursBounds(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "alice")
	goal, err := env.goal.Create(user.ID, "Learn Go", "")
	require.NoError(t, err)

	// Boundaries are inclusive
	_, err = env.logs.Create(goal.ID, "2025-06-15", 0.1, "")
	assert.NoError(t, err)
	_, err = env.logs.Create(goal.ID, "2025-06-15", 24, "")
	assert.NoError(t, err)

	// Just outside is rejected
	_, err = env.logs.Create(goal.ID, "2025-06-15", 0.09, "")
	assert.ErrorIs(t, err, ErrInvalidHours)
	_, err = env.logs.Create(goal.ID, "2025-06-15", 24.01, "")
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestLogService_CreateThenList_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "alice")
	goal, err := env.goal.Create(user.ID, "Learn Go", "2025-12-31")
	require.NoError(t, err)

	created, err := env.logs.Create(goal.ID, "2025-06-15", 2.5, "channels chapter")
	require.NoError(t, err)

	gotGoal, logs, err := env.logs.Logs(user.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, gotGoal.ID)
	require.Len(t, logs, 1)
	assert.Equal(t, created.ID, logs[0].ID)
	assert.Equal(t, "2025-06-15", logs[0].Date)
	assert.InDelta(t, 2.5, logs[0].HoursSpent, 1e-9)
	assert.Equal(t, "channels chapter", logs[0].Notes)
}

func TestLogService_CrossUserAccessIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	goal, err := env.goal.Create(alice.ID, "Learn Go", "")
	require.NoError(t, err)
	log, err := env.logs.Create(goal.ID, "2025-06-15", 2, "")
	require.NoError(t, err)

	_, _, err = env.logs.Logs(bob.ID, goal.ID)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)

	err = env.logs.Update(bob.ID, log.ID, "2025-06-16", 3, "")
	assert.ErrorIs(t, err, repository.ErrLogNotFound)

	err = env.logs.Delete(bob.ID, log.ID)
	assert.ErrorIs(t, err, repository.ErrLogNotFound)

	// Alice still sees her entry untouched
	got, err := env.logs.ByID(alice.ID, log.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got.HoursSpent, 1e-9)
}

func TestLogService_Update(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "alice")
	goal, err := env.goal.Create(user.ID, "Learn Go", "")
	require.NoError(t, err)
	log, err := env.logs.Create(goal.ID, "2025-06-15", 2, "old")
	require.NoError(t, err)

	err = env.logs.Update(user.ID, log.ID, "2025-06-16", 25, "new")
	assert.ErrorIs(t, err, ErrInvalidHours)

	require.NoError(t, env.logs.Update(user.ID, log.ID, "2025-06-16", 3.5, "new"))

	got, err := env.logs.ByID(user.ID, log.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-16", got.Date)
	assert.InDelta(t, 3.5, got.HoursSpent, 1e-9)
	assert.Equal(t, "new", got.Notes)
}

func TestLogService_WeeklySummary_Window(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "alice")
	goal, err := env.goal.Create(user.ID, "Learn Go", "")
	require.NoError(t, err)

	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
	}

	_, err = env.logs.Create(goal.ID, day(-8), 3, "")
	require.NoError(t, err)
	_, err = env.logs.Create(goal.ID, day(-5), 2, "")
	require.NoError(t, err)
	_, err = env.logs.Create(goal.ID, day(-1), 1, "")
	require.NoError(t, err)
	_, err = env.logs.Create(goal.ID, day(0), 4, "")
	require.NoError(t, err)

	totals, err := env.logs.WeeklySummary(user.ID)
	require.NoError(t, err)
	require.Len(t, totals, 3)

	// T-8 excluded; remaining days ascending
	assert.Equal(t, day(-5), totals[0].Date)
	assert.InDelta(t, 2.0, totals[0].Hours, 1e-9)
	assert.Equal(t, day(-1), totals[1].Date)
	assert.InDelta(t, 1.0, totals[1].Hours, 1e-9)
	assert.Equal(t, day(0), totals[2].Date)
	assert.InDelta(t, 4.0, totals[2].Hours, 1e-9)
}
