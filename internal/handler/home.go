package handler

import (
	"net/http"

	"github.com/goalhours/goalhours/internal/ctxkeys"
	"github.com/goalhours/goalhours/internal/ui"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomePage shows the landing page, or the dashboard for signed-in users.
func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	if user != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	ui.Render(w, r, "index", ui.M{"Title": "Welcome"})
}

func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
