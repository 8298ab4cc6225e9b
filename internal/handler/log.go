package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goalhours/goalhours/internal/ctxkeys"
	"github.com/goalhours/goalhours/internal/model"
	"github.com/goalhours/goalhours/internal/repository"
	"github.com/goalhours/goalhours/internal/service"
	"github.com/goalhours/goalhours/internal/ui"
)

type LogHandler struct {
	logService  *service.LogService
	goalService *service.GoalService
}

func NewLogHandler(logService *service.LogService, goalService *service.GoalService) *LogHandler {
	return &LogHandler{
		logService:  logService,
		goalService: goalService,
	}
}

func (h *LogHandler) LogEntryPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("goalId")

	goal, err := h.goalService.ByID(user.ID, goalID)
	if err != nil {
		ui.SetFlash(w, ui.FlashError, "Goal not found!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	ui.Render(w, r, "log_entry", ui.M{
		"Title":    "Log hours",
		"Username": user.Username,
		"Goal":     goal,
		"FormDate": time.Now().Format("2006-01-02"),
	})
}

func (h *LogHandler) LogEntry(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("goalId")

	// Ownership check happens here, before CreateLog: the validated goal
	// is also needed to re-render the form on the error path.
	goal, err := h.goalService.ByID(user.ID, goalID)
	if err != nil {
		ui.SetFlash(w, ui.FlashError, "Goal not found!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	date := strings.TrimSpace(r.FormValue("date"))
	hoursStr := strings.TrimSpace(r.FormValue("hours_spent"))
	notes := r.FormValue("notes")

	rerender := func(message string) {
		ui.Render(w, r, "log_entry", ui.M{
			"Title":     "Log hours",
			"Username":  user.Username,
			"Goal":      goal,
			"Flash":     &ui.Flash{Kind: ui.FlashError, Message: message},
			"FormDate":  date,
			"FormHours": hoursStr,
			"FormNotes": notes,
		})
	}

	hours, err := strconv.ParseFloat(hoursStr, 64)
	if err != nil {
		rerender("Hours must be between 0.1 and 24")
		return
	}

	_, err = h.logService.Create(goal.ID, date, hours, notes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidHours) {
			rerender("Hours must be between 0.1 and 24")
			return
		}
		slog.Error("failed to create log", "error", err, "user_id", user.ID, "goal_id", goal.ID)
		rerender("Failed to add log entry. Please try again.")
		return
	}

	ui.SetFlash(w, ui.FlashSuccess, "Log entry added successfully!")
	http.Redirect(w, r, "/view_logs/"+goal.ID, http.StatusSeeOther)
}

func (h *LogHandler) ViewLogs(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("goalId")

	goal, logs, err := h.logService.Logs(user.ID, goalID)
	if err != nil {
		if !errors.Is(err, repository.ErrGoalNotFound) {
			slog.Error("failed to list logs", "error", err, "user_id", user.ID, "goal_id", goalID)
		}
		ui.SetFlash(w, ui.FlashError, "Goal not found!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	ui.Render(w, r, "view_logs", ui.M{
		"Title":    goal.Name,
		"Username": user.Username,
		"Goal":     goal,
		"Logs":     logs,
	})
}

func (h *LogHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	logID := r.PathValue("logId")
	goalID := r.PathValue("goalId")

	err := h.logService.Delete(user.ID, logID)
	if err != nil {
		// Not found is reported but not fatal; we head back to the list
		// either way.
		if !errors.Is(err, repository.ErrLogNotFound) {
			slog.Error("failed to delete log", "error", err, "user_id", user.ID, "log_id", logID)
		}
		ui.SetFlash(w, ui.FlashError, "Log entry not found!")
		http.Redirect(w, r, "/view_logs/"+goalID, http.StatusSeeOther)
		return
	}

	ui.SetFlash(w, ui.FlashSuccess, "Log entry deleted successfully!")
	http.Redirect(w, r, "/view_logs/"+goalID, http.StatusSeeOther)
}

func (h *LogHandler) EditLogPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	logID := r.PathValue("logId")

	log, err := h.logService.ByID(user.ID, logID)
	if err != nil {
		ui.SetFlash(w, ui.FlashError, "Log entry not found!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	h.renderEditLog(w, r, user.Username, log, nil, log.Date, formatHours(log.HoursSpent), log.Notes)
}

func (h *LogHandler) EditLog(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	logID := r.PathValue("logId")

	log, err := h.logService.ByID(user.ID, logID)
	if err != nil {
		ui.SetFlash(w, ui.FlashError, "Log entry not found!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	date := strings.TrimSpace(r.FormValue("date"))
	hoursStr := strings.TrimSpace(r.FormValue("hours_spent"))
	notes := r.FormValue("notes")

	hours, perr := strconv.ParseFloat(hoursStr, 64)
	if perr != nil {
		flash := &ui.Flash{Kind: ui.FlashError, Message: "Hours must be between 0.1 and 24"}
		h.renderEditLog(w, r, user.Username, log, flash, date, hoursStr, notes)
		return
	}

	err = h.logService.Update(user.ID, logID, date, hours, notes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidHours) {
			flash := &ui.Flash{Kind: ui.FlashError, Message: "Hours must be between 0.1 and 24"}
			h.renderEditLog(w, r, user.Username, log, flash, date, hoursStr, notes)
			return
		}
		if errors.Is(err, repository.ErrLogNotFound) {
			ui.SetFlash(w, ui.FlashError, "Log entry not found!")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		slog.Error("failed to update log", "error", err, "user_id", user.ID, "log_id", logID)
		flash := &ui.Flash{Kind: ui.FlashError, Message: "Failed to update log entry. Please try again."}
		h.renderEditLog(w, r, user.Username, log, flash, date, hoursStr, notes)
		return
	}

	ui.SetFlash(w, ui.FlashSuccess, "Log entry updated successfully!")
	http.Redirect(w, r, "/view_logs/"+log.GoalID, http.StatusSeeOther)
}

func (h *LogHandler) renderEditLog(w http.ResponseWriter, r *http.Request, username string, log *model.Log, flash *ui.Flash, date, hours, notes string) {
	data := ui.M{
		"Title":     "Edit entry",
		"Username":  username,
		"Log":       log,
		"FormDate":  date,
		"FormHours": hours,
		"FormNotes": notes,
	}
	if flash != nil {
		data["Flash"] = flash
	}
	ui.Render(w, r, "edit_log", data)
}

// formatHours renders hours the way the entry form expects them, without a
// trailing ".0" on whole values.
func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
