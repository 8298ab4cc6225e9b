package service

import (
	"testing"

	"github.com/goalhours/goalhours/internal/model"
	"github.com/goalhours/goalhours/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_Create_BlankTargetDateIsNull(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "alice")

	goal, err := env.goal.Create(user.ID, "Learn Go", "")
	require.NoError(t, err)
	assert.Nil(t, goal.TargetDate)
	assert.Equal(t, model.GoalStatusActive, goal.Status)

	dated, err := env.goal.Create(user.ID, "Run", "2025-12-31")
	require.NoError(t, err)
	require.NotNil(t, dated.TargetDate)
	assert.Equal(t, "2025-12-31", *dated.TargetDate)
}

func TestGoalService_GoalsWithTotals_ZeroWithoutLogs(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "alice")

	_, err := env.goal.Create(user.ID, "Learn Go", "")
	require.NoError(t, err)

	goals, err := env.goal.GoalsWithTotals(user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 0.0, goals[0].TotalHours)
}

func TestGoalService_UpdateAndDelete_WrongOwner(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	bob := registerUser(t, env, "bob")

	goal, err := env.goal.Create(alice.ID, "Learn Go", "")
	require.NoError(t, err)

	err = env.goal.Update(bob.ID, goal.ID, "Hijacked", "")
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)

	err = env.goal.Delete(bob.ID, goal.ID)
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)

	got, err := env.goal.ByID(alice.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", got.Name)
}
