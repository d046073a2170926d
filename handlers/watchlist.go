package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"wayfare/services/watchlist"
)

// WatchlistHandler serves the want-to-go list endpoints.
type WatchlistHandler struct {
	watchlist *watchlist.Service
	gate      *Gate
	templates *template.Template
}

// NewWatchlistHandler creates the watchlist handler.
func NewWatchlistHandler(watchlistService *watchlist.Service, gate *Gate, templates *template.Template) *WatchlistHandler {
	return &WatchlistHandler{
		watchlist: watchlistService,
		gate:      gate,
		templates: templates,
	}
}

// WantToGoPageData holds data for the want-to-go template
type WantToGoPageData struct {
	WantToGo []string
}

// AddToWantToGo handles POST /addToWantToGo with form field location
func (h *WatchlistHandler) AddToWantToGo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error: Location is required.", http.StatusBadRequest)
		return
	}

	location := r.FormValue("location")
	if location == "" {
		http.Error(w, "Error: Location is required.", http.StatusBadRequest)
		return
	}

	username, ok := h.gate.Username(r)
	if !ok {
		http.Error(w, "Error: User is not logged in.", http.StatusUnauthorized)
		return
	}

	outcome, err := h.watchlist.Add(r.Context(), username, location)
	if err != nil {
		if errors.Is(err, watchlist.ErrUserNotFound) {
			http.Error(w, "User not found.", http.StatusNotFound)
			return
		}
		slog.Error("watchlist.add_failed", "username", username, "location", location, "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	if outcome == watchlist.OutcomeAlreadyPresent {
		http.Error(w, "Location is already in the list.", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Location added successfully."))
}

// WantToGo handles GET /wanttogo
func (h *WatchlistHandler) WantToGo(w http.ResponseWriter, r *http.Request) {
	username, ok := h.gate.Username(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	list, err := h.watchlist.List(r.Context(), username)
	if err != nil {
		if errors.Is(err, watchlist.ErrUserNotFound) {
			http.Error(w, "User not found.", http.StatusNotFound)
			return
		}
		slog.Error("watchlist.list_failed", "username", username, "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	renderTemplate(w, h.templates, "wanttogo.html", WantToGoPageData{WantToGo: list})
}
