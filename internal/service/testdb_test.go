package service

import (
	"testing"
	"time"

	"github.com/goalhours/goalhours/internal/db"
	"github.com/goalhours/goalhours/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type testEnv struct {
	db   *sqlx.DB
	auth *AuthService
	goal *GoalService
	logs *LogService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dbx, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	dbx.SetMaxOpenConns(1)

	err = db.RunMigrations(dbx.DB, "sqlite")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = dbx.Close()
	})

	userRepo := repository.NewUserRepository(dbx)
	goalRepo := repository.NewGoalRepository(dbx)
	logRepo := repository.NewLogRepository(dbx)

	return &testEnv{
		db:   dbx,
		auth: NewAuthService(userRepo, "test-secret", time.Hour, false),
		goal: NewGoalService(goalRepo),
		logs: NewLogService(logRepo, goalRepo),
	}
}
