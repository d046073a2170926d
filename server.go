package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"wayfare/handlers"
	"wayfare/internal/database"
	"wayfare/services/accounts"
	"wayfare/services/catalog"
	"wayfare/services/sessions"
	"wayfare/services/watchlist"
	"wayfare/utils"
)

// buildRouter wires the services and handlers onto the base router.
func buildRouter(db *database.DB, sessionTTL time.Duration) (*mux.Router, error) {
	templates, err := handlers.ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	accountsService := accounts.NewService(db, 0)
	watchlistService := watchlist.NewService(db)
	sessionStore := sessions.NewStore(sessionTTL)
	gate := handlers.NewGate(sessionStore)

	authHandler := handlers.NewAuthHandler(accountsService, sessionStore, gate, templates)
	pagesHandler := handlers.NewPagesHandler(gate, templates)
	searchHandler := handlers.NewSearchHandler(templates)
	watchlistHandler := handlers.NewWatchlistHandler(watchlistService, gate, templates)

	r := utils.NewRouter()

	r.HandleFunc("/", authHandler.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/", authHandler.LoginSubmit).Methods(http.MethodPost)
	r.HandleFunc("/registration", authHandler.RegistrationPage).Methods(http.MethodGet)
	r.HandleFunc("/registration", authHandler.RegistrationSubmit).Methods(http.MethodPost)
	r.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	r.HandleFunc("/home", gate.RequirePage(pagesHandler.Home)).Methods(http.MethodGet)
	for _, category := range []string{"hiking", "islands", "cities"} {
		r.HandleFunc("/"+category, gate.RequirePage(pagesHandler.Category(category))).Methods(http.MethodGet)
	}
	for _, d := range catalog.Destinations() {
		r.HandleFunc("/"+strings.ToLower(d.Name), gate.RequirePage(pagesHandler.Destination(d.Name))).Methods(http.MethodGet)
	}

	// Both search variants are gated; the form POST gets the same check as
	// the query-string GET
	r.HandleFunc("/search", gate.RequirePage(searchHandler.Search)).Methods(http.MethodGet)
	r.HandleFunc("/search", gate.RequirePage(searchHandler.SearchForm)).Methods(http.MethodPost)

	r.HandleFunc("/addToWantToGo", watchlistHandler.AddToWantToGo).Methods(http.MethodPost)
	r.HandleFunc("/wanttogo", watchlistHandler.WantToGo).Methods(http.MethodGet)

	return r, nil
}
