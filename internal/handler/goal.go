package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goalhours/goalhours/internal/ctxkeys"
	"github.com/goalhours/goalhours/internal/repository"
	"github.com/goalhours/goalhours/internal/service"
	"github.com/goalhours/goalhours/internal/ui"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) AddGoalPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	ui.Render(w, r, "add_goal", ui.M{
		"Title":    "Add goal",
		"Username": user.Username,
	})
}

func (h *GoalHandler) AddGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	name := strings.TrimSpace(r.FormValue("name"))
	targetDate := strings.TrimSpace(r.FormValue("target_date"))

	if name == "" {
		ui.Render(w, r, "add_goal", ui.M{
			"Title":          "Add goal",
			"Username":       user.Username,
			"Flash":          &ui.Flash{Kind: ui.FlashError, Message: "Goal name is required"},
			"FormTargetDate": targetDate,
		})
		return
	}

	_, err := h.goalService.Create(user.ID, name, targetDate)
	if err != nil {
		slog.Error("failed to create goal", "error", err, "user_id", user.ID)
		ui.Render(w, r, "add_goal", ui.M{
			"Title":          "Add goal",
			"Username":       user.Username,
			"Flash":          &ui.Flash{Kind: ui.FlashError, Message: "Failed to add goal. Please try again."},
			"FormName":       name,
			"FormTargetDate": targetDate,
		})
		return
	}

	ui.SetFlash(w, ui.FlashSuccess, "Goal added successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *GoalHandler) EditGoalPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("goalId")

	goal, err := h.goalService.ByID(user.ID, goalID)
	if err != nil {
		// Someone else's goal looks exactly like a missing one
		ui.SetFlash(w, ui.FlashError, "Goal not found!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	targetDate := ""
	if goal.TargetDate != nil {
		targetDate = *goal.TargetDate
	}

	ui.Render(w, r, "edit_goal", ui.M{
		"Title":          "Edit goal",
		"Username":       user.Username,
		"Goal":           goal,
		"FormName":       goal.Name,
		"FormTargetDate": targetDate,
	})
}

func (h *GoalHandler) EditGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("goalId")

	name := strings.TrimSpace(r.FormValue("name"))
	targetDate := strings.TrimSpace(r.FormValue("target_date"))

	if name == "" {
		goal, err := h.goalService.ByID(user.ID, goalID)
		if err != nil {
			ui.SetFlash(w, ui.FlashError, "Goal not found!")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		ui.Render(w, r, "edit_goal", ui.M{
			"Title":          "Edit goal",
			"Username":       user.Username,
			"Goal":           goal,
			"Flash":          &ui.Flash{Kind: ui.FlashError, Message: "Goal name is required"},
			"FormTargetDate": targetDate,
		})
		return
	}

	err := h.goalService.Update(user.ID, goalID, name, targetDate)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			ui.SetFlash(w, ui.FlashError, "Goal not found!")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		slog.Error("failed to update goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		ui.SetFlash(w, ui.FlashError, "Failed to update goal. Please try again.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	ui.SetFlash(w, ui.FlashSuccess, "Goal updated successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("goalId")

	err := h.goalService.Delete(user.ID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			ui.SetFlash(w, ui.FlashError, "Goal not found!")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		slog.Error("failed to delete goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		ui.SetFlash(w, ui.FlashError, "Failed to delete goal. Please try again.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	ui.SetFlash(w, ui.FlashSuccess, "Goal deleted successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
