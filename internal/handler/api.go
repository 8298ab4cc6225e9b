package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/goalhours/goalhours/internal/ctxkeys"
	"github.com/goalhours/goalhours/internal/service"
)

type APIHandler struct {
	logService *service.LogService
}

func NewAPIHandler(logService *service.LogService) *APIHandler {
	return &APIHandler{
		logService: logService,
	}
}

// weeklyData is the chart payload: two parallel arrays in ascending date
// order. Days without logs are omitted rather than zero-filled.
type weeklyData struct {
	Dates []string  `json:"dates"`
	Hours []float64 `json:"hours"`
}

// WeeklyData returns per-day hour totals for the trailing week as JSON.
// Unlike the page handlers this endpoint answers 401 instead of
// redirecting, since it is consumed by the dashboard script.
func (h *APIHandler) WeeklyData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user := ctxkeys.User(r.Context())
	if user == nil {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Not authenticated"})
		return
	}

	totals, err := h.logService.WeeklySummary(user.ID)
	if err != nil {
		slog.Error("failed to load weekly summary", "error", err, "user_id", user.ID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load weekly data"})
		return
	}

	data := weeklyData{
		Dates: []string{},
		Hours: []float64{},
	}
	for _, t := range totals {
		data.Dates = append(data.Dates, t.Date)
		data.Hours = append(data.Hours, t.Hours)
	}

	err = json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode weekly data", "error", err, "user_id", user.ID)
	}
}
