package repository

import (
	"testing"
	"time"

	"github.com/goalhours/goalhours/internal/db"
	"github.com/goalhours/goalhours/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dbx, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)

	// In-memory SQLite is per connection; keep the pool at one
	dbx.SetMaxOpenConns(1)

	err = db.RunMigrations(dbx.DB, "sqlite")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = dbx.Close()
	})

	return dbx
}

func newTestUser(t *testing.T, repo UserRepository, username string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(user))
	return user
}

func newTestGoal(t *testing.T, repo GoalRepository, userID, name string, createdAt time.Time) *model.Goal {
	t.Helper()

	goal := &model.Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Status:    model.GoalStatusActive,
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(goal))
	return goal
}

func newTestLog(t *testing.T, repo LogRepository, goalID, date string, hours float64, notes string) *model.Log {
	t.Helper()

	log := &model.Log{
		ID:         uuid.New().String(),
		GoalID:     goalID,
		Date:       date,
		HoursSpent: hours,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(log))
	return log
}
