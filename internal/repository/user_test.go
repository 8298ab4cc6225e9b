package repository

import (
	"testing"
	"time"

	"github.com/goalhours/goalhours/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	dbx := newTestDB(t)
	repo := NewUserRepository(dbx)

	newTestUser(t, repo, "alice")

	dup := &model.User{
		ID:           uuid.New().String(),
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	err := repo.Create(dup)
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	dbx := newTestDB(t)
	repo := NewUserRepository(dbx)

	newTestUser(t, repo, "alice")

	dup := &model.User{
		ID:           uuid.New().String(),
		Username:     "bob",
		Email:        "alice@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	err := repo.Create(dup)
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestUserRepository_ByUsername_ExactMatch(t *testing.T) {
	dbx := newTestDB(t)
	repo := NewUserRepository(dbx)

	user := newTestUser(t, repo, "alice")

	got, err := repo.ByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Lookup is case-sensitive
	_, err = repo.ByUsername("Alice")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_Delete_CascadesGoalsAndLogs(t *testing.T) {
	dbx := newTestDB(t)
	users := NewUserRepository(dbx)
	goals := NewGoalRepository(dbx)
	logs := NewLogRepository(dbx)

	user := newTestUser(t, users, "alice")
	goal := newTestGoal(t, goals, user.ID, "Learn Go", time.Now())
	newTestLog(t, logs, goal.ID, "2025-06-01", 2, "")

	require.NoError(t, users.Delete(user.ID))

	var goalCount, logCount int
	require.NoError(t, dbx.Get(&goalCount, `SELECT COUNT(*) FROM goals`))
	require.NoError(t, dbx.Get(&logCount, `SELECT COUNT(*) FROM logs`))
	assert.Equal(t, 0, goalCount)
	assert.Equal(t, 0, logCount)
}
