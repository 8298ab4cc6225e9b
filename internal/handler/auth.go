package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goalhours/goalhours/internal/service"
	"github.com/goalhours/goalhours/internal/ui"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "register", ui.M{"Title": "Register"})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	// Re-render keeps the submitted username/email; the password is never
	// echoed back.
	rerender := func(message string) {
		ui.Render(w, r, "register", ui.M{
			"Title":        "Register",
			"Flash":        &ui.Flash{Kind: ui.FlashError, Message: message},
			"FormUsername": username,
			"FormEmail":    email,
		})
	}

	_, err := h.authService.Register(username, email, password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			rerender("Username or email already exists!")
			return
		}
		if errors.Is(err, service.ErrUsernameRequired) {
			rerender("Username is required")
			return
		}
		// Validation errors carry a user-facing message; anything else
		// gets a generic notice.
		msg := err.Error()
		if !isUserFacing(err) {
			slog.Error("registration failed", "error", err, "username", username)
			msg = "Registration failed. Please try again."
		}
		rerender(msg)
		return
	}

	ui.SetFlash(w, ui.FlashSuccess, "Registration successful! Please login.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "login", ui.M{"Title": "Log in"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.authService.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			slog.Error("login failed", "error", err, "username", username)
		}
		// One message for unknown username and wrong password alike
		ui.Render(w, r, "login", ui.M{
			"Title":        "Log in",
			"Flash":        &ui.Flash{Kind: ui.FlashError, Message: "Invalid username or password!"},
			"FormUsername": username,
		})
		return
	}

	token, err := h.authService.GenerateSessionToken(user)
	if err != nil {
		slog.Error("failed to generate session token", "error", err, "user_id", user.ID)
		ui.Render(w, r, "login", ui.M{
			"Title":        "Log in",
			"Flash":        &ui.Flash{Kind: ui.FlashError, Message: "An error occurred. Please try again."},
			"FormUsername": username,
		})
		return
	}

	h.authService.SetSessionCookie(w, token, time.Now().Add(h.authService.SessionExpiry()))

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	ui.SetFlash(w, ui.FlashSuccess, "Login successful!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearSessionCookie(w)
	ui.SetFlash(w, ui.FlashInfo, "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// isUserFacing reports whether the error message is safe to show as-is.
func isUserFacing(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "password") || strings.Contains(msg, "email")
}
