package routes

import (
	"net/http"

	"github.com/goalhours/goalhours/internal/app"
	"github.com/goalhours/goalhours/internal/handler"
	"github.com/goalhours/goalhours/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(app.AuthService)
	dashboard := handler.NewDashboardHandler(app.GoalService)
	goal := handler.NewGoalHandler(app.GoalService)
	logs := handler.NewLogHandler(app.LogService, app.GoalService)
	api := handler.NewAPIHandler(app.LogService)

	mux := http.NewServeMux()

	// Auth submissions are rate limited per IP
	rateLimiter := middleware.RateLimitAuth()

	// Public
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("GET /health", home.Health)
	mux.HandleFunc("GET /register", middleware.RequireGuest(auth.RegisterPage))
	mux.HandleFunc("POST /register", rateLimiter(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("GET /login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("POST /login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("GET /logout", auth.Logout)

	// Dashboard
	mux.HandleFunc("GET /dashboard", middleware.RequireAuth(dashboard.DashboardPage))

	// Goals
	mux.HandleFunc("GET /add_goal", middleware.RequireAuth(goal.AddGoalPage))
	mux.HandleFunc("POST /add_goal", middleware.RequireAuth(goal.AddGoal))
	mux.HandleFunc("GET /edit_goal/{goalId}", middleware.RequireAuth(goal.EditGoalPage))
	mux.HandleFunc("POST /edit_goal/{goalId}", middleware.RequireAuth(goal.EditGoal))
	mux.HandleFunc("GET /delete_goal/{goalId}", middleware.RequireAuth(goal.DeleteGoal))

	// Logs
	mux.HandleFunc("GET /log_entry/{goalId}", middleware.RequireAuth(logs.LogEntryPage))
	mux.HandleFunc("POST /log_entry/{goalId}", middleware.RequireAuth(logs.LogEntry))
	mux.HandleFunc("GET /view_logs/{goalId}", middleware.RequireAuth(logs.ViewLogs))
	mux.HandleFunc("GET /delete_log/{logId}/{goalId}", middleware.RequireAuth(logs.DeleteLog))
	mux.HandleFunc("GET /edit_log/{logId}", middleware.RequireAuth(logs.EditLogPage))
	mux.HandleFunc("POST /edit_log/{logId}", middleware.RequireAuth(logs.EditLog))

	// API (answers 401 itself rather than redirecting)
	mux.HandleFunc("GET /api/weekly_data", api.WeeklyData)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
	)

	return handler
}
