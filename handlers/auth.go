package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"wayfare/services/accounts"
	"wayfare/services/sessions"
)

// AuthHandler serves the login and registration flows.
type AuthHandler struct {
	accounts  *accounts.Service
	sessions  *sessions.Store
	gate      *Gate
	templates *template.Template
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(accountsService *accounts.Service, sessionStore *sessions.Store, gate *Gate, templates *template.Template) *AuthHandler {
	return &AuthHandler{
		accounts:  accountsService,
		sessions:  sessionStore,
		gate:      gate,
		templates: templates,
	}
}

// LoginPageData holds data for the login template
type LoginPageData struct {
	Error string
}

// RegistrationPageData holds data for the registration template
type RegistrationPageData struct {
	Error   string
	Success string
}

// LoginPage serves the login form (GET /)
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already signed in: straight to home
	if _, ok := h.gate.Username(r); ok {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	renderTemplate(w, h.templates, "login.html", LoginPageData{})
}

// LoginSubmit handles login form submission (POST /)
func (h *AuthHandler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, "Username and password are required!")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	account, err := h.accounts.Authenticate(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidInput):
			h.renderLoginError(w, "Username and password are required!")
		case errors.Is(err, accounts.ErrInvalidCredentials):
			h.renderLoginError(w, "Invalid username or password.")
		default:
			slog.Error("auth.login_failed", "username", username, "error", err)
			h.renderLoginError(w, "An error occurred during login.")
		}
		return
	}

	token, err := h.sessions.Create(account.Username)
	if err != nil {
		slog.Error("auth.session_create_failed", "username", account.Username, "error", err)
		h.renderLoginError(w, "An error occurred during login.")
		return
	}

	SetSessionCookie(w, token, h.sessions.TTL())
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// RegistrationPage serves the registration form (GET /registration)
func (h *AuthHandler) RegistrationPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, h.templates, "registration.html", RegistrationPageData{})
}

// RegistrationSubmit handles registration form submission (POST /registration)
func (h *AuthHandler) RegistrationSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegistration(w, "All fields are required!", "")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if _, err := h.accounts.Register(r.Context(), username, password); err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidInput):
			h.renderRegistration(w, "All fields are required!", "")
		case errors.Is(err, accounts.ErrUsernameTaken):
			h.renderRegistration(w, "Username already exists.", "")
		default:
			slog.Error("auth.registration_failed", "username", username, "error", err)
			h.renderRegistration(w, "Error registering user.", "")
		}
		return
	}

	h.renderRegistration(w, "", "Registration successful! You can now log in.")
}

// Logout revokes the session and clears the cookie (POST /logout)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		h.sessions.Invalidate(cookie.Value)
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, errMsg string) {
	renderTemplate(w, h.templates, "login.html", LoginPageData{Error: errMsg})
}

func (h *AuthHandler) renderRegistration(w http.ResponseWriter, errMsg, success string) {
	renderTemplate(w, h.templates, "registration.html", RegistrationPageData{Error: errMsg, Success: success})
}
