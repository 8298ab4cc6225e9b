package handler

import (
	"log/slog"
	"net/http"

	"github.com/goalhours/goalhours/internal/ctxkeys"
	"github.com/goalhours/goalhours/internal/service"
	"github.com/goalhours/goalhours/internal/ui"
)

type DashboardHandler struct {
	goalService *service.GoalService
}

func NewDashboardHandler(goalService *service.GoalService) *DashboardHandler {
	return &DashboardHandler{
		goalService: goalService,
	}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.GoalsWithTotals(user.ID)
	if err != nil {
		slog.Error("failed to get goals", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "dashboard", ui.M{
		"Title":    "Dashboard",
		"Username": user.Username,
		"Goals":    goals,
	})
}
