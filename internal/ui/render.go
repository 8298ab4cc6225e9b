package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages are parsed together with the layout so each page fills the
// layout's content block without clashing with the others.
var pages = map[string]*template.Template{}

func init() {
	names := []string{
		"index",
		"register",
		"login",
		"dashboard",
		"add_goal",
		"edit_goal",
		"log_entry",
		"view_logs",
		"edit_log",
	}

	for _, name := range names {
		pages[name] = template.Must(template.ParseFS(templateFS,
			"templates/layout.html",
			fmt.Sprintf("templates/%s.html", name),
		))
	}
}

// M is shorthand for template data
type M map[string]any

// Render executes the named page inside the layout. The pending flash
// notice, if any, is popped into the data under "Flash".
func Render(w http.ResponseWriter, r *http.Request, name string, data M) {
	tmpl, ok := pages[name]
	if !ok {
		slog.Error("render unknown template", "name", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = M{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = PopFlash(w, r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := tmpl.ExecuteTemplate(w, "layout", data)
	if err != nil {
		slog.Error("render failed", "error", err, "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
