package app

import (
	"fmt"

	"github.com/goalhours/goalhours/internal/config"
	"github.com/goalhours/goalhours/internal/db"
	"github.com/goalhours/goalhours/internal/repository"
	"github.com/goalhours/goalhours/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	AuthService *service.AuthService
	GoalService *service.GoalService
	LogService  *service.LogService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	logRepository := repository.NewLogRepository(database)

	// Services
	authService := service.NewAuthService(
		userRepository,
		cfg.SessionSecret,
		cfg.SessionExpiry,
		cfg.IsProduction(),
	)
	goalService := service.NewGoalService(goalRepository)
	logService := service.NewLogService(logRepository, goalRepository)

	return &App{
		Cfg:         cfg,
		DB:          database,
		AuthService: authService,
		GoalService: goalService,
		LogService:  logService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
